package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name      string
		notebook  string
		want      string
		expectErr bool
	}{
		{name: "canonical jupyter", notebook: "jupyter", want: "jupyter"},
		{name: "default alias", notebook: "default", want: "jupyter"},
		{name: "ipython alias", notebook: "ipython", want: "jupyter"},
		{name: "legacy server", notebook: "sagenb", want: "sagenb"},
		{name: "case insensitive", notebook: "Jupyter", want: "jupyter"},
		{name: "unknown name", notebook: "zeppelin", expectErr: true},
		{name: "empty name", notebook: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			launcher, err := Resolve(tc.notebook)

			if tc.expectErr {
				require.Error(t, err)
				require.Nil(t, launcher)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, launcher.Name())
		})
	}
}

func TestPort(t *testing.T) {
	testCases := []struct {
		name     string
		launcher Launcher
		tokens   []string
		want     int
	}{
		{name: "jupyter default", launcher: &Jupyter{}, want: 8888},
		{name: "legacy default", launcher: &SageNB{}, want: 8080},
		{name: "keyword form", launcher: &SageNB{}, tokens: []string{"port=9999"}, want: 9999},
		{name: "flag form", launcher: &Jupyter{}, tokens: []string{"--port=9090"}, want: 9090},
		{name: "split flag form", launcher: &Jupyter{}, tokens: []string{"--port", "7000"}, want: 7000},
		{name: "unparseable port falls back", launcher: &Jupyter{}, tokens: []string{"--port=abc"}, want: 8888},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Port(tc.launcher, tc.tokens))
		})
	}
}

func TestJupyterCommandPassesTokensThrough(t *testing.T) {
	cmd, err := (&Jupyter{}).Command(context.Background(), []string{"--no-browser", "--port=9000"})

	require.NoError(t, err)
	require.Equal(t, []string{"jupyter", "notebook", "--no-browser", "--port=9000"}, cmd.Args)
}

func TestSageNBCommandTranslatesTokens(t *testing.T) {
	cmd, err := (&SageNB{}).Command(context.Background(), []string{"port=1234", "secure=True"})

	require.NoError(t, err)
	require.Equal(t, []string{"sagenb", "--port=1234", "--secure=true"}, cmd.Args)
}
