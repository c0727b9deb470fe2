package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// JoinRequest is the payload of the join command.
type JoinRequest struct {
	TopicID string `json:"topic_id" validate:"required,min=1,max=64"`
}

// LeaveRequest optionally narrows the leave to one topic.
type LeaveRequest struct {
	TopicID string `json:"topic_id" validate:"omitempty,min=1,max=64"`
}

// TokenRequest is the dev token-minting payload.
type TokenRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=64"`
}

// TopicRequest seeds or updates a catalog entry.
type TopicRequest struct {
	ID     string `json:"id" validate:"required,min=1,max=64"`
	Title  string `json:"title" validate:"required,min=1,max=128"`
	Active bool   `json:"active"`
}

func ValidateStruct(s any) error {
	return validate.Struct(s)
}
