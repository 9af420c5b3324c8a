package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

var businessStatus = map[string]int{
	"unauthenticated":         http.StatusUnauthorized,
	"invalid_credentials":     http.StatusUnauthorized,
	"slot_not_found":          http.StatusNotFound,
	"request_not_found":       http.StatusNotFound,
	"room_not_found":          http.StatusNotFound,
	"reminder_not_found":      http.StatusNotFound,
	"profile_not_found":       http.StatusNotFound,
	"not_slot_owner":          http.StatusForbidden,
	"not_room_participant":    http.StatusForbidden,
	"not_matched":             http.StatusForbidden,
	"already_requested":       http.StatusConflict,
	"request_already_decided": http.StatusConflict,
	"email_taken":             http.StatusConflict,
	"avatar_upload_disabled":  http.StatusServiceUnavailable,
}

var businessMessages = map[string]string{
	"unauthenticated":         "Login required.",
	"invalid_credentials":     "Invalid email or password.",
	"slot_not_found":          "Time slot not found.",
	"own_slot":                "You cannot request your own slot.",
	"slot_inactive":           "This slot is no longer open.",
	"already_requested":       "You already requested this slot.",
	"message_too_long":        "Message is too long.",
	"request_not_found":       "Request not found.",
	"request_mismatch":        "Request does not match the given slot or requester.",
	"not_slot_owner":          "Only the slot owner can decide on this request.",
	"invalid_decision":        "Decision must be approved or rejected.",
	"request_already_decided": "This request was already decided.",
	"room_not_found":          "Chat room not found.",
	"not_room_participant":    "You are not part of this chat.",
	"not_matched":             "Chats open only between a slot owner and an approved partner.",
	"empty_message":           "Message cannot be empty.",
	"invalid_nickname":        "Nickname must be 2-8 Hangul, Latin letters or digits, without spaces.",
	"email_taken":             "Email already registered.",
	"invalid_email":           "Invalid email.",
	"weak_password":           "Password must have at least 6 characters.",
	"invalid_time_range":      "Start time must be before end time.",
	"missing_title":           "Title is required.",
	"title_too_long":          "Title must be at most 100 characters.",
	"description_too_long":    "Description must be at most 500 characters.",
	"location_too_long":       "Location must be at most 200 characters.",
	"content_too_long":        "Reminder must be at most 500 characters.",
	"reminder_not_found":      "Reminder not found.",
	"missing_reminder_fields": "Date and content are required.",
	"invalid_date":            "Invalid date.",
	"invalid_filter":          "Unknown filter.",
	"avatar_upload_disabled":  "Avatar upload is not configured.",
	"invalid_image":           "Unsupported image.",
	"profile_not_found":       "Profile not found.",
	"invalid_room":            "Host and guest must be two different users.",
	"invalid_client_token":    "Client token is too long.",
	"bio_too_long":            "Bio is too long.",
	"not_found":               "Resource not found.",
}

// FromError writes err as a JSON error. Business errors keep their code,
// everything else is logged and reported as an internal error.
func FromError(c *gin.Context, err error, fallbackCode string) {
	code, ok := AsBusiness(err)
	if !ok {
		log.Printf("%s: %v", fallbackCode, err)
		Internal(c, fallbackCode, "Unexpected error.")
		return
	}

	status, found := businessStatus[code]
	if !found {
		status = http.StatusBadRequest
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = code
	}

	Write(c, status, code, msg)
}
