package dotazure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "io", KindIo.String())
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "invalid data", KindInvalidData.String())
	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, "io", (&Error{Kind: KindIo}).Error())
	assert.Equal(t, "boom", (&Error{Kind: KindIo, Err: cause}).Error())
	assert.Equal(t, "bad", (&Error{Kind: KindIo, Message: "bad"}).Error())
	assert.Equal(t, "bad: boom", (&Error{Kind: KindIo, Message: "bad", Err: cause}).Error())
}

func TestErrorMatching(t *testing.T) {
	err := fmt.Errorf("outer: %w", newError(KindNotFound, "missing"))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsIo(err))
	assert.False(t, IsInvalidData(err))
	assert.True(t, errors.Is(err, &Error{Kind: KindNotFound}))
	assert.False(t, errors.Is(err, &Error{Kind: KindIo}))

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsNotFound(nil))
}

func TestIoErrorClassification(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here")
	err := ioError(statErr, "stat failed")
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = ioError(fs.ErrPermission, "open failed")
	assert.True(t, IsIo(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
