package transport

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskCreateRequest mirrors the write-side task columns. Pointer fields keep
// "absent" distinguishable from "empty" so the datastore sees real NULLs.
type TaskCreateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Deadline    *string `json:"deadline"`
}

// TaskUpdateRequest is a partial update; absent fields keep stored values.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Deadline    *string `json:"deadline"`
}
