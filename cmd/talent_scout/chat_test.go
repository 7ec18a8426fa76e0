package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatQuestionsFlag_DefaultsToUnset(t *testing.T) {
	flag := chatCmd.Flags().Lookup("questions")
	require.NotNil(t, flag)

	// The flag must default to zero so a question_count from a config file
	// survives the merge; the controller applies the real default later.
	assert.Equal(t, "0", flag.DefValue)
}
