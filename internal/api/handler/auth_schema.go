package handler

// errorResponse is the standard error envelope returned on gate and
// not-found failures.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope the auth endpoints use for failures,
// matching the original server's contract.
type messageResponse struct {
	Message string `json:"message"`
}

// registerRequest keeps validation minimal: the contract accepts any name,
// phone, and password the client sends, so only the fields the flow itself
// consumes are required. The role value is checked against domain.ValidRole
// in the handler.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// insertAck mirrors the store's insertion acknowledgment.
type insertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// deleteAck mirrors the store's deletion acknowledgment.
type deleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
