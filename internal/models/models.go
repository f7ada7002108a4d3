// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}

// DateLayout is the wire and storage format of Date.
const DateLayout = "2006-01-02"

// Date is a calendar day without time of day, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string in YYYY-MM-DD format")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as TEXT so lexical order equals date order.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = NewDate(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

// RetroItem is a single row of a retrospective board.
type RetroItem struct {
	WhatWentWell string `json:"what_went_well"`
	ToImprove    string `json:"to_improve"`
	Actions      string `json:"actions"`
}

// Retro is a stored retrospective session.
type Retro struct {
	ID          int64       `json:"id"`
	SessionDate Date        `json:"session_date"`
	Items       []RetroItem `json:"items"`
}

// RetroPayload is the body of create and update requests.
// Pointers and nil slices distinguish missing fields from empty ones.
type RetroPayload struct {
	SessionDate *Date       `json:"session_date"`
	Items       []RetroItem `json:"items"`
}

// Item is the minimal demo entity.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AttachmentResponse is returned after a successful upload.
// ContentType echoes what the client declared; the stored type is in the filename extension.
type AttachmentResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

// StatusResponse is the body of the health endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageResponse is a standard format for simple API messages.
type MessageResponse struct {
	Message string `json:"message"`
}
