package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_DefaultsOnly(t *testing.T) {
	cli := Arguments{Action: "push", Arguments: []string{"feat", "add", "parser"}}

	res, err := Resolve(cli, &GlitterRc{})
	require.NoError(t, err)
	require.Equal(t, "push", res.Action)
	require.Equal(t, []string{"feat", "add", "parser"}, res.Arguments)
	require.Equal(t, DefaultRCName, res.RCPath)
	require.Equal(t, "", res.Branch)
	require.False(t, res.Dry)
	require.False(t, res.NoHost)
	require.False(t, res.Raw)
	require.False(t, res.NoVerify)
}

func TestResolve_OverrideFillsUnsetFields(t *testing.T) {
	cli := Arguments{Action: "push"}
	rc := &GlitterRc{Arguments: []Arguments{{
		Action:   "push",
		Branch:   "main",
		Dry:      Explicit(true),
		NoVerify: Explicit(true),
	}}}

	res, err := Resolve(cli, rc)
	require.NoError(t, err)
	require.Equal(t, "main", res.Branch)
	require.True(t, res.Dry)
	require.True(t, res.NoVerify)
	require.False(t, res.Raw)
}

func TestResolve_CommandLineWins(t *testing.T) {
	cli := Arguments{
		Action: "push",
		Branch: "feature/login",
		Dry:    Explicit(false),
		Raw:    ImplicitTrue(),
	}
	rc := &GlitterRc{Arguments: []Arguments{{
		Action: "push",
		Branch: "main",
		Dry:    Explicit(true),
		Raw:    Explicit(false),
	}}}

	res, err := Resolve(cli, rc)
	require.NoError(t, err)
	require.Equal(t, "feature/login", res.Branch)
	require.False(t, res.Dry, "explicit command-line false beats override true")
	require.True(t, res.Raw)
}

func TestResolve_OverrideMatchesActionAsTyped(t *testing.T) {
	rc := &GlitterRc{Arguments: []Arguments{{
		Action: "commit",
		Dry:    Explicit(true),
	}}}

	res, err := Resolve(Arguments{Action: "commit"}, rc)
	require.NoError(t, err)
	require.True(t, res.Dry)

	// The same override does not apply to other spellings of the action.
	res, err = Resolve(Arguments{Action: "push"}, rc)
	require.NoError(t, err)
	require.False(t, res.Dry)
}

func TestResolve_CaseMismatchIsAnError(t *testing.T) {
	rc := &GlitterRc{Arguments: []Arguments{{Action: "Push"}}}

	_, err := Resolve(Arguments{Action: "push"}, rc)
	require.Error(t, err)

	var merr *ConfigMismatchError
	require.ErrorAs(t, err, &merr)
	require.Equal(t, "push", merr.Typed)
	require.Equal(t, "Push", merr.Configured)
	require.Contains(t, err.Error(), "case-sensitive")
}

func TestResolve_ExactMatchBeatsCaseMismatch(t *testing.T) {
	rc := &GlitterRc{Arguments: []Arguments{
		{Action: "Push", Dry: Explicit(true)},
		{Action: "push", NoVerify: Explicit(true)},
	}}

	res, err := Resolve(Arguments{Action: "push"}, rc)
	require.NoError(t, err)
	require.False(t, res.Dry)
	require.True(t, res.NoVerify)
}

func TestResolve_RCPathPrecedence(t *testing.T) {
	rc := &GlitterRc{Arguments: []Arguments{{Action: "push", RCPath: "configs/.glitterrc"}}}

	res, err := Resolve(Arguments{Action: "push"}, rc)
	require.NoError(t, err)
	require.Equal(t, "configs/.glitterrc", res.RCPath)

	res, err = Resolve(Arguments{Action: "push", RCPath: "other/.glitterrc"}, rc)
	require.NoError(t, err)
	require.Equal(t, "other/.glitterrc", res.RCPath)
}

func TestResolve_PositionalsComeFromCommandLineOnly(t *testing.T) {
	rc := &GlitterRc{Arguments: []Arguments{{Action: "push", Branch: "main"}}}

	res, err := Resolve(Arguments{Action: "push", Arguments: []string{"feat", "x"}}, rc)
	require.NoError(t, err)
	require.Equal(t, []string{"feat", "x"}, res.Arguments)
}
