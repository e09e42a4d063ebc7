package models

// ContactRequest is the payload of the storefront contact form.
type ContactRequest struct {
	Name    string `json:"name" binding:"required" example:"Sita Shrestha"`
	Phone   string `json:"phone" binding:"required" example:"+977 98XXXXXXXX"`
	Email   string `json:"email" binding:"omitempty,email" example:"sita@example.com"`
	Message string `json:"message" binding:"required" example:"Do you deliver to Lalitpur on Saturdays?"`
}
