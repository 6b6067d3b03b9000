package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TimedCommandTestSuite struct {
	suite.Suite
}

func TestTimedCommandSuite(t *testing.T) {
	suite.Run(t, new(TimedCommandTestSuite))
}

func (s *TimedCommandTestSuite) TestNamePassthrough() {
	cmd := Timed(NewFuncCommand("export data", func() error { return nil }))
	s.Equal("export data", cmd.Name())
}

func (s *TimedCommandTestSuite) TestExecute_RunsInnerOnce() {
	calls := 0
	cmd := Timed(NewFuncCommand("counting", func() error {
		calls++
		return nil
	}))

	s.NoError(cmd.Execute())
	s.Equal(1, calls)
}

func (s *TimedCommandTestSuite) TestExecute_PropagatesError() {
	wantErr := errors.New("boom")
	cmd := Timed(NewFuncCommand("failing", func() error { return wantErr }))

	s.ErrorIs(cmd.Execute(), wantErr)
}

func (s *TimedCommandTestSuite) TestFuncCommand_NilRun() {
	cmd := NewFuncCommand("empty", nil)
	s.NoError(cmd.Execute())
}
