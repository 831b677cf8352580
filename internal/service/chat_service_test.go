package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatOfflineModeWithoutAPIKey(t *testing.T) {
	svc := NewChatService("", "gpt-4o-mini", nil)

	reply, err := svc.Send(context.Background(), "qual o realmlist?")
	require.NoError(t, err)
	assert.Contains(t, reply, "set realmlist")

	reply, err = svc.Send(context.Background(), "Olá!")
	require.NoError(t, err)
	assert.Contains(t, reply, "Olá")

	reply, err = svc.Send(context.Background(), "me fala a build de shadow priest")
	require.NoError(t, err)
	assert.Contains(t, reply, "Shadow Priest")

	reply, err = svc.Send(context.Background(), "something it cannot answer offline")
	require.NoError(t, err)
	assert.Contains(t, reply, "Modo Offline")
}

func TestMentionsRanking(t *testing.T) {
	assert.True(t, mentionsRanking("mostra o RANKING do servidor"))
	assert.True(t, mentionsRanking("quem está no top?"))
	assert.False(t, mentionsRanking("como chego em Orgrimmar?"))
}
