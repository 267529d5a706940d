package mainwindow

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestShortcutKeyName(t *testing.T) {
	cases := []struct {
		name fyne.KeyName
		want string
	}{
		{fyne.KeyEqual, "="},
		{fyne.KeyPlus, "+"},
		{fyne.KeyMinus, "-"},
		{fyne.Key0, "0"},
		{fyne.KeyLeftBracket, "["},
		{fyne.KeyRightBracket, "]"},
		{fyne.KeyS, "s"},
		{fyne.KeyUp, "ArrowUp"},
		{fyne.KeyDown, "ArrowDown"},
		{fyne.KeyLeft, "ArrowLeft"},
		{fyne.KeyRight, "ArrowRight"},
		{fyne.KeyEscape, ""},
		{fyne.KeyA, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, shortcutKeyName(tc.name), string(tc.name))
	}
}
