// Package profile stores who is drilling. The display name is stamped on
// every history record.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/countdrill/internal/schema"
	"github.com/abhisek/countdrill/internal/store"
)

// GuestName is the first name used for guest sessions.
const GuestName = "Guest"

// ErrEmptyName is returned when a required name part is blank.
var ErrEmptyName = errors.New("first and last name are required")

// Profile identifies the learner.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

var profileSchema = &schema.Schema{
	Name: "user-profile",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"firstName", "lastName"},
		"properties": map[string]any{
			"firstName": map[string]any{"type": "string", "minLength": 1},
			"lastName":  map[string]any{"type": "string"},
		},
	},
}

// New returns a named profile. Both parts are trimmed and must be non-blank.
func New(first, last string) (Profile, error) {
	p := Profile{FirstName: strings.TrimSpace(first), LastName: strings.TrimSpace(last)}
	if p.FirstName == "" || p.LastName == "" {
		return Profile{}, ErrEmptyName
	}
	return p, nil
}

// Guest returns the profile for an anonymous learner.
func Guest() Profile {
	return Profile{FirstName: GuestName}
}

// IsGuest reports whether p is the guest profile.
func (p Profile) IsGuest() bool {
	return p.FirstName == GuestName && p.LastName == ""
}

// DisplayName joins the name parts, e.g. "Ada Lovelace" or "Guest".
func (p Profile) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Load reads the stored profile. ok is false when none is stored or the
// stored value is unreadable; problems are reported to warn.
func Load(ctx context.Context, kv store.KV, warn io.Writer) (p Profile, ok bool) {
	raw, found, err := kv.Get(ctx, store.KeyProfile)
	if err != nil {
		fmt.Fprintf(warn, "warning: read profile: %v\n", err)
		return Profile{}, false
	}
	if !found {
		return Profile{}, false
	}
	if err := schema.Validate(profileSchema, json.RawMessage(raw)); err != nil {
		fmt.Fprintf(warn, "warning: ignoring stored profile: %v\n", err)
		return Profile{}, false
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		fmt.Fprintf(warn, "warning: ignoring stored profile: %v\n", err)
		return Profile{}, false
	}
	return p, true
}

// Save persists p.
func Save(ctx context.Context, kv store.KV, p Profile) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return ErrEmptyName
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := kv.Set(ctx, store.KeyProfile, string(data)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Clear removes the stored profile.
func Clear(ctx context.Context, kv store.KV) error {
	if err := kv.Remove(ctx, store.KeyProfile); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}
