package request

// RegisterDonorRequest mirrors an upstream donor into this service. The id
// is the upstream system's numeric donor id, not generated here.

type RegisterDonorRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}
