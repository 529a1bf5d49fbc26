// seed_providers carga proveedores desde un CSV (name,email,address[,status]).
// Los emails ya registrados se omiten, de modo que el comando puede repetirse.
//
// Uso: go run ./cmd/seed_providers -file providers.csv [-encoding latin1]
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/claims-api/internal/application/usecase"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/infrastructure/postgres"
	"github.com/jhoicas/claims-api/pkg/config"
	"github.com/jhoicas/claims-api/pkg/logger"
)

type providerRow struct {
	name, email, address string
	status               entity.ProviderStatus
}

func main() {
	file := flag.String("file", "providers.csv", "ruta del CSV de proveedores")
	encoding := flag.String("encoding", "utf-8", "codificación del CSV: utf-8 o latin1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir CSV")
	}
	defer f.Close()

	in, err := decodeInput(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}
	rows, err := readProviders(in)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	store := postgres.NewStore(cfg.DB)
	pool, err := store.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer store.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	uc := usecase.NewProviderUseCase(postgres.NewProviderRepository(pool))
	var created, skipped int
	for _, r := range rows {
		ok, err := uc.Seed(ctx, r.name, r.email, r.address, r.status)
		if err != nil {
			log.Error().Err(err).Str("email", r.email).Msg("proveedor no cargado")
			skipped++
			continue
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("carga de proveedores terminada")
}

func decodeInput(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", encoding)
	}
}

// readProviders lee las filas del CSV. Una primera fila con "name" en la primera columna se toma como encabezado.
func readProviders(r io.Reader) ([]providerRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []providerRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("línea %d: se esperaban al menos 3 columnas", line)
		}
		row := providerRow{name: rec[0], email: rec[1], address: rec[2]}
		if len(rec) > 3 {
			row.status = entity.ProviderStatus(strings.ToLower(strings.TrimSpace(rec[3])))
		}
		rows = append(rows, row)
	}
}
