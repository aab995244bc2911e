package testutil

import (
	"io"
	"os"

	errors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Captures the stdout and stderr content produced by a given function.
// The standard logger output is redirected to the captured stderr
// because the generator logs there.
func CaptureOutput(f func()) (stdout []byte, stderr []byte, err error) {
	rescueStdout := os.Stdout
	rescueStderr := os.Stderr
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot create stdout pipe")
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot create stderr pipe")
	}
	os.Stdout = wOut
	os.Stderr = wErr
	rescueLogOutput := logrus.StandardLogger().Out
	logrus.StandardLogger().SetOutput(wErr)
	// Restore the standard pipelines at the end.
	defer func() {
		os.Stdout = rescueStdout
		os.Stderr = rescueStderr
		logrus.StandardLogger().SetOutput(rescueLogOutput)
	}()

	f()

	wOut.Close()
	wErr.Close()

	stdout, err = io.ReadAll(rOut)
	if err != nil {
		err = errors.Wrap(err, "cannot read stdout")
		return
	}

	stderr, err = io.ReadAll(rErr)
	err = errors.Wrap(err, "cannot read stderr")
	return stdout, stderr, err
}
