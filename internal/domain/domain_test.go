package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "no violations",
			err:  NewValidationError(),
			want: "validation failed",
		},
		{
			name: "field and general violations",
			err: NewValidationError(
				FieldViolation{Field: "price", Message: "must be no less than 0"},
				FieldViolation{Message: "malformed JSON body"},
			),
			want: "validation failed: price: must be no less than 0; malformed JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestEvent_HasParticipant(t *testing.T) {
	event := &Event{Participants: []Participant{{ID: "p1", Type: ParticipantCustomer}}}

	assert.True(t, event.HasParticipant("p1"))
	assert.False(t, event.HasParticipant("p2"))
}

func TestEventPatch_IsEmpty(t *testing.T) {
	name := "Renamed"

	assert.True(t, EventPatch{}.IsEmpty())
	assert.False(t, EventPatch{Name: &name}.IsEmpty())
	assert.False(t, EventPatch{AddParticipants: []Participant{}}.IsEmpty())
}

func TestEventSelector_String(t *testing.T) {
	assert.Equal(t, "eventId=abc", EventByID("abc").String())
	assert.Equal(t, "name=Fair", EventByName("Fair").String())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Artist not found", NewNotFoundError("Artist not found").Error())
	assert.Equal(t, "Participant with ID p1 has already joined this event",
		NewConflictError("Participant with ID %s has already joined this event", "p1").Error())
}
