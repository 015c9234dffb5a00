package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "", Code(nil))
	assert.Equal(t, "", Code(errors.New("boom")))
	assert.Equal(t, "record_not_found", Code(ErrRecordNotFound))
	assert.Equal(t, "unrenderable_math", Code(fmt.Errorf("render %q: %w", `\foo`, ErrUnrenderableMath)))
	assert.Equal(t, "no_results", Code(fmt.Errorf("search: %w", ErrEmptyQueryResults)))
}
