package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJSMatchesExampleFile(t *testing.T) {
	out, err := RenderJS(ExampleFirebaseConfig())
	require.NoError(t, err)

	want := `window.FIREBASE_CONFIG = {
  apiKey: "YOUR_API_KEY",
  authDomain: "YOUR_PROJECT_ID.firebaseapp.com",
  projectId: "YOUR_PROJECT_ID",
  storageBucket: "YOUR_PROJECT_ID.firebasestorage.app",
  messagingSenderId: "YOUR_MESSAGING_SENDER_ID",
  appId: "YOUR_APP_ID",
  measurementId: "YOUR_MEASUREMENT_ID"
};
`
	assert.Equal(t, want, string(out))
}

func TestRenderJSONRoundTrip(t *testing.T) {
	cfg := ExampleFirebaseConfig()
	cfg.APIKey = `quote " and </script>`

	out, err := RenderJSON(cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), `{"apiKey":`))
	assert.NotContains(t, string(out), "</script>")

	var decoded FirebaseConfig
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, cfg, decoded)
}
