package testutil

import "testing"

// Given, When and Then label scenario steps in subtest names so registry
// scenarios read as the narrative they encode.
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+desc, fn)
}
