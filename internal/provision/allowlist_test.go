package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	values map[string]string
	err    error
	reads  []string
}

func (f *fakeSecrets) ReadSecret(_ context.Context, id string) (string, error) {
	f.reads = append(f.reads, id)
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.values[id]
	if !ok {
		return "", errors.New("ResourceNotFoundException")
	}
	return v, nil
}

func TestAllowedAccounts_InlineOnly(t *testing.T) {
	secrets := &fakeSecrets{}
	inline := []string{"arn:aws:iam::111111111111:root"}

	got, err := AllowedAccounts(context.Background(), secrets, inline, "")
	require.NoError(t, err)
	assert.Equal(t, inline, got)
	assert.Empty(t, secrets.reads)

	got[0] = "changed"
	assert.Equal(t, "arn:aws:iam::111111111111:root", inline[0], "input must not be aliased")
}

func TestAllowedAccounts_SecretAppended(t *testing.T) {
	secrets := &fakeSecrets{values: map[string]string{
		"execrole/allowed": `["arn:aws:iam::333333333333:root", "arn:aws:iam::111111111111:root"]`,
	}}

	got, err := AllowedAccounts(context.Background(), secrets,
		[]string{"arn:aws:iam::111111111111:root"}, "execrole/allowed")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"arn:aws:iam::111111111111:root",
		"arn:aws:iam::333333333333:root",
		"arn:aws:iam::111111111111:root",
	}, got)
	assert.Equal(t, []string{"execrole/allowed"}, secrets.reads)
}

func TestAllowedAccounts_ReadError(t *testing.T) {
	want := errors.New("AccessDeniedException")
	secrets := &fakeSecrets{err: want}

	_, err := AllowedAccounts(context.Background(), secrets, nil, "s")
	assert.ErrorIs(t, err, want)
}

func TestAllowedAccounts_NoSecretStore(t *testing.T) {
	_, err := AllowedAccounts(context.Background(), nil, nil, "s")
	assert.ErrorIs(t, err, ErrInvalidAllowList)
}

func TestParseAllowList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"empty array", `[]`, []string{}, false},
		{"one", `["arn:aws:iam::1:root"]`, []string{"arn:aws:iam::1:root"}, false},
		{"surrounding whitespace", "\n [\"a\"] \n", []string{"a"}, false},
		{"object", `{"accounts":["a"]}`, nil, true},
		{"not json", `arn:aws:iam::1:root`, nil, true},
		{"blank entry", `["a", " "]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAllowList(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAllowList)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
