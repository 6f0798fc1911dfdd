package chats_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sungkangmobil/showroom-assistant/pkg/chats"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, chats.User.Valid())
	assert.True(t, chats.Assistant.Valid())
	assert.False(t, chats.Role("system").Valid())
	assert.False(t, chats.Role("").Valid())
}

func TestNewTurn(t *testing.T) {
	turn := chats.NewTurn(chats.User, "halo")

	assert.Equal(t, chats.User, turn.Role)
	assert.Equal(t, "halo", turn.Text)
}

func TestHistory_Window(t *testing.T) {
	var h chats.History
	for i := 0; i < 8; i++ {
		h = append(h, chats.NewTurn(chats.User, fmt.Sprintf("turn-%d", i)))
	}

	w := h.Window(5)

	assert.Len(t, w, 5)
	assert.Equal(t, "turn-3", w[0].Text)
	assert.Equal(t, "turn-7", w[4].Text)
}

func TestHistory_Window_ShorterThanN(t *testing.T) {
	h := chats.History{
		chats.NewTurn(chats.User, "satu"),
		chats.NewTurn(chats.Assistant, "dua"),
	}

	w := h.Window(5)

	assert.Len(t, w, 2)
	assert.Equal(t, "satu", w[0].Text)
}

func TestHistory_Window_Empty(t *testing.T) {
	var h chats.History

	assert.Empty(t, h.Window(5))
	assert.Nil(t, h.Window(0))
	assert.Nil(t, h.Window(-1))
}

func TestHistory_Last(t *testing.T) {
	var h chats.History

	_, ok := h.Last()
	assert.False(t, ok)

	h = append(h, chats.NewTurn(chats.User, "pertama"), chats.NewTurn(chats.Assistant, "kedua"))

	last, ok := h.Last()
	assert.True(t, ok)
	assert.Equal(t, "kedua", last.Text)
}
