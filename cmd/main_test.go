package main

import (
	"bytes"
	"converter/pkg/domain"
	"converter/pkg/serrors"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// run executes the root command against a config path that does not exist,
// so configuration comes from the environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"-c", filepath.Join(t.TempDir(), "missing.yml")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "32", formatValue(32, 0))
	require.Equal(t, "0.000621371", formatValue(0.000621371, 0))
	require.Equal(t, "5280.01", formatValue(5280.0149, 2))
	require.Equal(t, "-32.808", formatValue(-32.8084, 3))
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "1000", "--category", "length", "--from", "meters", "--to", "kilometers")
	require.NoError(t, err)
	require.Equal(t, "1000 Meters = 1 Kilometers\n", out)

	out, err = run(t, "convert", "0", "--category", "Temperature", "--from", "Celsius", "--to", "Fahrenheit")
	require.NoError(t, err)
	require.Equal(t, "0 Celsius = 32 Fahrenheit\n", out)

	out, err = run(t, "convert", "--category", "length", "--from", "meters", "--to", "feet", "--precision", "4", "--", "-10")
	require.NoError(t, err)
	require.Equal(t, "-10.0000 Meters = -32.8084 Feet\n", out)
}

func TestConvertCommand_DefaultUnits(t *testing.T) {
	out, err := run(t, "convert", "3", "--category", "volume", "--to", "liters", "--precision", "3")
	require.NoError(t, err)
	require.Equal(t, "3.000 Milliliters = 0.003 Liters\n", out)
}

func TestConvertCommand_PrecisionFromEnv(t *testing.T) {
	t.Setenv("CONVERTER_PRECISION", "2")

	out, err := run(t, "convert", "1", "--category", "volume", "--from", "gallons", "--to", "milliliters")
	require.NoError(t, err)
	require.Equal(t, "1.00 Gallons = 3785.41 Milliliters\n", out)
}

func TestConvertCommand_Errors(t *testing.T) {
	_, err := run(t, "convert", "abc", "--category", "length")
	require.ErrorContains(t, err, "invalid value")

	_, err = run(t, "convert", "1", "--category", "weight")
	require.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = run(t, "convert", "1", "--category", "length", "--from", "meters", "--to", "celsius")
	require.ErrorIs(t, err, domain.ErrUnknownUnit)

	_, err = run(t, "convert", "1e308", "--category", "length", "--from", "meters", "--to", "feet")
	require.ErrorIs(t, err, serrors.ErrUnprocessable)

	_, err = run(t, "convert", "1", "--category", "length", "--precision", "-1")
	require.ErrorIs(t, err, errNegativePrecision)

	_, err = run(t, "convert", "1")
	require.Error(t, err)
}

func TestConvertCommand_Lenient(t *testing.T) {
	out, err := run(t, "convert", "5", "--category", "length", "--from", "furlongs", "--to", "meters", "--lenient")
	require.NoError(t, err)
	require.Equal(t, "5 furlongs = 5 Meters\n", out)

	t.Setenv("CONVERTER_LENIENT", "true")
	out, err = run(t, "convert", "5", "--category", "length", "--from", "meters", "--to", "furlongs")
	require.NoError(t, err)
	require.Equal(t, "5 Meters = 5 furlongs\n", out)
}

func TestUnitsCommand(t *testing.T) {
	out, err := run(t, "units")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"Length (linear, base Meters): Meters, Kilometers, Feet, Yards, Miles",
		"Volume (linear, base Milliliters): Milliliters, Liters, Cups, Pints, Gallons",
		"Temperature (affine): Celsius, Fahrenheit, Kelvin",
	}, lines)

	out, err = run(t, "units", "temperature")
	require.NoError(t, err)
	require.Equal(t, "Temperature (affine): Celsius, Fahrenheit, Kelvin\n", out)

	_, err = run(t, "units", "weight")
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestJWTCommand(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	t.Setenv("JWT_PRIVATE_KEY", string(privPEM))

	subject := uuid.NewString()
	out, err := run(t, "jwt", "--subject", subject, "--ttl", "1h")
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(strings.TrimSpace(out), &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return &priv.PublicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, subject, sub)

	_, err = run(t, "jwt", "--subject", "not-a-uuid")
	require.ErrorContains(t, err, "subject must be a UUID")
}

func TestJWTCommand_MissingKey(t *testing.T) {
	t.Setenv("JWT_PRIVATE_KEY", "")

	_, err := run(t, "jwt")
	require.ErrorContains(t, err, "could not parse RSA private key")
}
