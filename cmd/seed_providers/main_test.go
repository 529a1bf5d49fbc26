package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

func TestReadProviders_EncabezadoYEstadoOpcional(t *testing.T) {
	in := "name,email,address,status\n" +
		"Acme Salud,contacto@acme.test,Calle 1\n" +
		"\"Norte, S.A.\",norte@acme.test,Av 2,Inactive\n"

	rows, err := readProviders(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, providerRow{name: "Acme Salud", email: "contacto@acme.test", address: "Calle 1"}, rows[0])
	assert.Equal(t, "Norte, S.A.", rows[1].name)
	assert.Equal(t, entity.ProviderInactive, rows[1].status)
}

func TestReadProviders_ColumnasFaltantes(t *testing.T) {
	_, err := readProviders(strings.NewReader("Acme,contacto@acme.test\n"))
	assert.Error(t, err)
}

func TestDecodeInput_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("Clínica Ñandú,c@x.test,Bogotá\n")
	require.NoError(t, err)

	r, err := decodeInput(bytes.NewReader([]byte(raw)), "latin1")
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Clínica Ñandú,c@x.test,Bogotá\n", string(out))

	_, err = decodeInput(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}
