package settle

import (
	"testing"

	"github.com/iov-one/settle/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMsg struct {
	Valid bool
}

func (testMsg) Path() string { return "test/do_something" }

func (m testMsg) Validate() error {
	if !m.Valid {
		return errors.ErrMsg.New("not valid")
	}
	return nil
}

type testTx struct {
	msg Msg
}

func (tx testTx) GetMsg() (Msg, error) {
	if tx.msg == nil {
		return nil, errors.ErrEmpty.New("no message")
	}
	return tx.msg, nil
}

func TestLoadMsg(t *testing.T) {
	var msg testMsg
	require.NoError(t, LoadMsg(testTx{msg: &testMsg{Valid: true}}, &msg))
	assert.True(t, msg.Valid)

	var ptr *testMsg
	require.NoError(t, LoadMsg(testTx{msg: &testMsg{Valid: true}}, &ptr))
	assert.True(t, ptr.Valid)

	err := LoadMsg(testTx{msg: testMsg{Valid: false}}, &msg)
	assert.True(t, errors.ErrMsg.Is(err))

	var other AuthContext
	err = LoadMsg(testTx{msg: testMsg{Valid: true}}, &other)
	assert.True(t, errors.ErrType.Is(err))

	err = LoadMsg(testTx{}, &msg)
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/do_something", GetPath(testTx{msg: testMsg{}}))
	assert.Equal(t, "(missing)", GetPath(testTx{}))
	assert.Equal(t, "do_something", FunctionName("test/do_something"))
	assert.Equal(t, "plain", FunctionName("plain"))
}
