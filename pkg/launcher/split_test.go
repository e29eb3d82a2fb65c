package launcher_test

import (
	"reflect"
	"testing"

	"github.com/SylleoYr/pegasus-frontend/pkg/launcher"
)

func TestSplitCommand(t *testing.T) {
	testCases := []struct {
		name     string
		command  string
		expected []string
	}{
		{
			name:     "plain arguments",
			command:  "retroarch --menu -v",
			expected: []string{"retroarch", "--menu", "-v"},
		},
		{
			name:     "quoted argument with spaces",
			command:  `"Super Game!" --fullscreen`,
			expected: []string{"Super Game!", "--fullscreen"},
		},
		{
			name:     "quotes joined with bare text form one token",
			command:  `emu --save "My Game".sav`,
			expected: []string{"emu", "--save", "My Game.sav"},
		},
		{
			name:     "tripled quote is a literal quote",
			command:  `echo a"""b`,
			expected: []string{"echo", `a"b`},
		},
		{
			name:     "tripled quote inside quoted section",
			command:  `echo "a """ b"`,
			expected: []string{"echo", `a " b`},
		},
		{
			name:     "collapsed whitespace between tokens",
			command:  "run   one\t two",
			expected: []string{"run", "one", "two"},
		},
		{
			name:     "empty command",
			command:  "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			command:  "   \t ",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := launcher.SplitCommand(tc.command)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("SplitCommand(%q) = %#v, expected %#v", tc.command, got, tc.expected)
			}
		})
	}
}

func TestSplitCommand_RoundTripsBuildOutput(t *testing.T) {
	// The splitter must undo exactly the quoting BuildCommand applies.
	command := launcher.BuildCommand(`emu "%ROM%" --name %BASENAME%`, `/roms/Super "X" Game.rom`)
	got := launcher.SplitCommand(command)
	expected := []string{"emu", `/roms/Super "X" Game.rom`, "--name", `Super "X" Game`}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("round trip = %#v, expected %#v", got, expected)
	}
}
