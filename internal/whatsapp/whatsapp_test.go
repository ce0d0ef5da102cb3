package whatsapp

import (
	"testing"

	"mazee-site/internal/i18n"
	"mazee-site/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "hello world", expected: "hello%20world"},
		{input: "I'm (really) here!*", expected: "I'm%20(really)%20here!*"},
		{input: "a+b=c&d", expected: "a%2Bb%3Dc%26d"},
		{input: "~-_.", expected: "~-_."},
		{input: "გამარჯობა", expected: "%E1%83%92%E1%83%90%E1%83%9B%E1%83%90%E1%83%A0%E1%83%AF%E1%83%9D%E1%83%91%E1%83%90"},
		{input: "line\nbreak", expected: "line%0Abreak"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeURIComponent(tt.input))
		})
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t,
		"https://wa.me/995514107878?text=Request%20a%20quote",
		URL("995514107878", "Request a quote"),
	)
}

func TestBook_Compose(t *testing.T) {
	book := NewBook(DefaultPhones)

	tests := []struct {
		name        string
		phone       string
		message     string
		expected    string
		expectedErr error
	}{
		{
			name:     "Display form",
			phone:    "+995 598 505 522",
			message:  "View pricing",
			expected: "https://wa.me/995598505522?text=View%20pricing",
		},
		{
			name:     "Number form",
			phone:    "995514107878",
			message:  "Hi",
			expected: "https://wa.me/995514107878?text=Hi",
		},
		{
			name:        "Blank message",
			phone:       "995514107878",
			message:     "   ",
			expectedErr: model.ErrEmptyMessage,
		},
		{
			name:        "Unknown phone",
			phone:       "+1 555 0100",
			message:     "Hi",
			expectedErr: model.ErrUnknownPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := book.Compose(tt.phone, tt.message)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Empty(t, link)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, link)
		})
	}
}

func TestBook_Default(t *testing.T) {
	assert.Equal(t, "995514107878", NewBook(DefaultPhones).Default().Value)
	assert.Equal(t, Phone{}, NewBook(nil).Default())
}

func TestMessages(t *testing.T) {
	bundle, err := i18n.DefaultBundle()
	require.NoError(t, err)
	tr := bundle.Translator(model.LocaleEN)

	assert.Equal(t, "Hi Maze Group, I'm interested in learning more about your services...", DefaultMessage(tr))
	assert.Equal(t,
		"Hi Maze Group, I'm interested in learning more about LG Pro:Centric Hotel TV. Please provide more details about specifications and pricing.",
		ProductMessage(tr, "LG Pro:Centric Hotel TV"),
	)
	assert.Len(t, QuickReplies(tr), 5)
	assert.Len(t, QuickReplies(bundle.Translator(model.LocaleGE)), 5)
}
