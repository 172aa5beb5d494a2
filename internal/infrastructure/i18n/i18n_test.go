package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/screenflow/internal/infrastructure/logging"
)

var messages = fstest.MapFS{
	"locales/active.en.toml": {Data: []byte(`
pause_title = "PAUSED"
hud_level = "WORLD {{.World}} - LEVEL {{.N}}"
only_english = "English only"
`)},
	"locales/active.ko.toml": {Data: []byte(`
pause_title = "일시 정지"
hud_level = "월드 {{.World}} - 레벨 {{.N}}"
`)},
}

func TestTranslator_English(t *testing.T) {
	tr, err := New(messages, "locales", "en", logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, "PAUSED", tr.T("pause_title", nil))
	assert.Equal(t, "WORLD 1 - LEVEL 3", tr.T("hud_level", map[string]any{"World": 1, "N": 3}))
	assert.ElementsMatch(t, []string{"en", "ko"}, tr.Languages())
}

func TestTranslator_KoreanFallsBackToEnglish(t *testing.T) {
	tr, err := New(messages, "locales", "ko", logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, "ko", tr.Language().String())
	assert.Equal(t, "일시 정지", tr.T("pause_title", nil))
	assert.Equal(t, "English only", tr.T("only_english", nil))
}

func TestTranslator_UnknownIDIsItself(t *testing.T) {
	tr, err := New(messages, "locales", "", logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "no_such_message", tr.T("no_such_message", nil))
}

func TestTranslator_BadLanguageUsesDefault(t *testing.T) {
	tr, err := New(messages, "locales", "not a language!", logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, tr.Language())
	assert.Equal(t, "PAUSED", tr.T("pause_title", nil))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(fstest.MapFS{}, "locales", "en", nil)
	assert.ErrorContains(t, err, "no message files")

	broken := fstest.MapFS{"locales/active.en.toml": {Data: []byte("pause_title = ")}}
	_, err = New(broken, "locales", "en", nil)
	assert.ErrorContains(t, err, "failed to parse")
}
