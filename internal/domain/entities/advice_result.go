package entities

import (
	"strings"
	"time"
)

type AdviceResult struct {
	requestID AdviceRequestID
	text      string
	createdAt time.Time
}

func NewAdviceResult(requestID AdviceRequestID, text string) *AdviceResult {
	return &AdviceResult{
		requestID: requestID,
		text:      strings.TrimSpace(text),
		createdAt: time.Now(),
	}
}

func (r *AdviceResult) RequestID() AdviceRequestID {
	return r.requestID
}

func (r *AdviceResult) Text() string {
	return r.text
}

func (r *AdviceResult) CreatedAt() time.Time {
	return r.createdAt
}

func (r *AdviceResult) HasText() bool {
	return r.text != ""
}
