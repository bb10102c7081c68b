package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want string
	}{
		{"no args", NoArgs(), "ls -al"},
		{"string arg appended", StringArgs("/tmp"), "ls -al /tmp"},
		{"string arg trimmed", StringArgs("  /tmp  "), "ls -al /tmp"},
		{"blank string arg dropped", StringArgs("   "), "ls -al"},
		{"token args joined", TokenArgs("-h", "/tmp"), "ls -al -h /tmp"},
		{"empty tokens dropped", TokenArgs("", "-h", "", "/tmp"), "ls -al -h /tmp"},
		{"all tokens empty", TokenArgs("", ""), "ls -al"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assemble("ls -al", tt.args))
		})
	}
}

func TestArgsJoin(t *testing.T) {
	assert.Equal(t, "", NoArgs().Join())
	assert.Equal(t, "a b", StringArgs("a b").Join())
	assert.Equal(t, "a b", TokenArgs("a", "b").Join())
}

func TestCwdNotAllowedErrorNamesPath(t *testing.T) {
	err := &CwdNotAllowedError{Path: "/etc"}
	assert.Contains(t, err.Error(), "/etc")
	assert.Contains(t, err.Error(), "outside allowed roots")

	err = &CwdNotAllowedError{Path: "/gone", Reason: "cannot be resolved"}
	assert.Contains(t, err.Error(), "/gone")
	assert.Contains(t, err.Error(), "cannot be resolved")
}
