package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken string
	RequestID   string
)

const redactedValue = "***********"

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	if x == "" {
		return slog.StringValue("")
	}
	return slog.StringValue(redactedValue)
}

func (x GitHubToken) String() string {
	if x == "" {
		return ""
	}
	return redactedValue
}
