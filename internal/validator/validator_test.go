package validator_test

import (
	"testing"

	"github.com/aretw0/actionflow/internal/validator"
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func known(classes ...string) func(string) bool {
	set := make(map[string]bool)
	for _, c := range classes {
		set[c] = true
	}
	return func(class string) bool { return set[class] }
}

func TestValidatePipeline(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := domain.Pipeline{Actions: []domain.Action{{Class: "A", Name: "a"}, {Class: "B", Name: "b"}}}
		assert.NoError(t, validator.ValidatePipeline(p, known("A", "B")))
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, validator.ValidatePipeline(domain.Pipeline{}, known()))
	})

	t.Run("reports every problem", func(t *testing.T) {
		p := domain.Pipeline{Actions: []domain.Action{
			{Class: "Ghost", Name: "first"},
			{Class: "A", Name: "fine"},
			{Name: "classless"},
		}}
		err := validator.ValidatePipeline(p, known("A"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNodeNotFound)
		assert.Contains(t, err.Error(), "action 1 (first): node Ghost not found")
		assert.Contains(t, err.Error(), "action 3 (classless): missing class")
		assert.NotContains(t, err.Error(), "fine")
	})
}

func TestUnboundInputs(t *testing.T) {
	p := domain.Pipeline{Actions: []domain.Action{
		{Class: "GetInputNode", OutputID: "greeting", Name: "get"},
		{Class: "PrintInputNode", InputID: "greeting", Name: "print"},
		{Class: "UpperNode", InputID: "name", OutputID: "loud", Name: "upper"},
		{Class: "CopyNode", InputID: "self", OutputID: "self", Name: "self"},
	}}

	warnings := validator.UnboundInputs(p)
	require.Len(t, warnings, 2)
	assert.Equal(t, validator.Warning{Index: 2, Action: "upper", Key: "name"}, warnings[0])
	assert.Equal(t, "self", warnings[1].Key)
	assert.Equal(t, `action 3 (upper) reads "name", which no earlier action writes`, warnings[0].String())
}
