package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "contacts/internal/errors"
	"contacts/internal/model"
)

func TestContactValidator_Validate(t *testing.T) {
	v := NewContactValidator()

	tests := []struct {
		name   string
		req    CreateContactRequest
		fields []string
	}{
		{
			name: "valid minimal",
			req:  CreateContactRequest{Name: "Alice", Email: "alice@example.com"},
		},
		{
			name: "valid at every bound",
			req: CreateContactRequest{
				Name:  strings.Repeat("n", model.NameMaxLen),
				Email: strings.Repeat("e", 40) + "@" + strings.Repeat("d", model.EmailMaxLen-53) + ".example.com",
				Phone: strPtr(strings.Repeat("1", model.PhoneMaxLen)),
				Note:  strPtr(strings.Repeat("x", model.NoteMaxLen)),
			},
		},
		{
			name:   "missing name and email",
			req:    CreateContactRequest{},
			fields: []string{"Name", "Email"},
		},
		{
			name:   "whitespace only name",
			req:    CreateContactRequest{Name: " \t  ", Email: "a@example.com"},
			fields: []string{"Name"},
		},
		{
			name:   "malformed email",
			req:    CreateContactRequest{Name: "A", Email: "not-an-email"},
			fields: []string{"Email"},
		},
		{
			name:   "domain without dot",
			req:    CreateContactRequest{Name: "A", Email: "a@localhost"},
			fields: []string{"Email"},
		},
		{
			name:   "name too long",
			req:    CreateContactRequest{Name: strings.Repeat("n", model.NameMaxLen+1), Email: "a@example.com"},
			fields: []string{"Name"},
		},
		{
			name:   "email too long",
			req:    CreateContactRequest{Name: "A", Email: strings.Repeat("e", model.EmailMaxLen) + "@example.com"},
			fields: []string{"Email"},
		},
		{
			name: "phone and note over column bounds",
			req: CreateContactRequest{
				Name:  "A",
				Email: "a@example.com",
				Phone: strPtr(strings.Repeat("1", model.PhoneMaxLen+1)),
				Note:  strPtr(strings.Repeat("x", model.NoteMaxLen+1)),
			},
			fields: []string{"Phone", "Note"},
		},
		{
			name:   "server assigned id",
			req:    CreateContactRequest{ID: 1, Name: "A", Email: "a@example.com"},
			fields: []string{"ID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Len(t, verr.Fields, len(tt.fields))
			for _, f := range tt.fields {
				require.Contains(t, verr.Fields, f)
				assert.Contains(t, verr.Fields[f][0], f)
			}
		})
	}
}

func TestContactValidator_EmailMessage(t *testing.T) {
	err := NewContactValidator().Validate(&UpdateContactRequest{ID: 1, Name: "A", Email: "not-an-email"})

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"The Email field is not a valid e-mail address."}, verr.Fields["Email"])
}

func TestContactValidator_BlankNameMessage(t *testing.T) {
	v := NewContactValidator()

	for _, req := range []interface{}{
		&CreateContactRequest{Name: "   ", Email: "a@example.com"},
		&UpdateContactRequest{ID: 1, Name: "   ", Email: "a@example.com"},
	} {
		var verr *apperrors.ValidationError
		require.True(t, errors.As(v.Validate(req), &verr))
		assert.Equal(t, map[string][]string{"Name": {"The Name field is required."}}, verr.Fields)
	}
}

func TestNewContactValidator_RegistersRules(t *testing.T) {
	assert.NotPanics(t, func() { NewContactValidator() })
}
