package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignOption_Validate(t *testing.T) {
	valid := DesignOption{ID: "classic", FrontPrompt: "A", BackPrompt: "B"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		option DesignOption
		field  string
	}{
		{name: "missing_id", option: DesignOption{FrontPrompt: "A", BackPrompt: "B"}, field: "id"},
		{name: "missing_front", option: DesignOption{ID: "x", BackPrompt: "B"}, field: "front_prompt"},
		{name: "blank_back", option: DesignOption{ID: "x", FrontPrompt: "A", BackPrompt: "  "}, field: "back_prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.option.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.True(t, errors.Is(err, ErrEmptyContent))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestDesignOption_Prompt(t *testing.T) {
	option := DesignOption{ID: "classic", FrontPrompt: "A", BackPrompt: "B"}

	front, err := option.Prompt(SideFront)
	require.NoError(t, err)
	assert.Equal(t, "A", front)

	back, err := option.Prompt(SideBack)
	require.NoError(t, err)
	assert.Equal(t, "B", back)

	_, err = option.Prompt(Side("Edge"))
	assert.ErrorIs(t, err, ErrInvalidSide)
}

func TestDesignCatalog(t *testing.T) {
	options := DesignOptions()
	require.NotEmpty(t, options)

	seen := make(map[string]bool)
	for _, o := range options {
		assert.NoError(t, o.Validate(), "catalog option %q must be valid", o.ID)
		assert.False(t, seen[o.ID], "duplicate id %q", o.ID)
		seen[o.ID] = true
	}

	found, err := FindDesignOption("classic")
	require.NoError(t, err)
	assert.Equal(t, "classic", found.ID)

	_, err = FindDesignOption("missing")
	assert.ErrorIs(t, err, ErrDesignNotFound)

	// Mutating the returned slice must not leak into the catalog.
	options[0].Title = "changed"
	again, _ := FindDesignOption(options[0].ID)
	assert.NotEqual(t, "changed", again.Title)
}
