package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/blobstore"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/spreadsheet"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// withCatalog starts the storage stack, runs fn against the catalog usecase and stops it again
func withCatalog(ctx context.Context, bucketURL string, fn func(uc usecase.CatalogUsecase) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if bucketURL != "" {
		cfg.Export = &config.ExportConfig{BucketURL: bucketURL}
	}

	var catalogUC usecase.CatalogUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			func() context.Context { return ctx },
			func(cfg *config.Config) service.QRCodeService {
				if cfg.QRCode == nil {
					return qrcode.NewQRCodeService(256, "M")
				}

				return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
			},
			spreadsheet.NewXLSXCodec,
			impl.NewCatalogService,
		),
		persistence.Module,
		blobstore.Module,
		fx.Populate(&catalogUC),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start catalog tooling")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(catalogUC)
}

func runSeed(ctx context.Context) error {
	return withCatalog(ctx, "", func(uc usecase.CatalogUsecase) error {
		inserted, err := uc.SeedDefaultCatalog(ctx)
		if err != nil {
			return err
		}

		if inserted == 0 {
			fmt.Println("Catalog already populated, nothing to seed")

			return nil
		}

		fmt.Printf("✅ Seeded %d products\n", inserted)

		return nil
	})
}

func runImport(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open spreadsheet")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.Wrap(err, "failed to stat spreadsheet")
	}

	checksum, err := util.CalculateFileChecksum(path)
	if err != nil {
		return err
	}

	fmt.Printf("Importing %s (%s, sha256 %s)\n", path, util.FormatBytes(info.Size()), checksum)

	return withCatalog(ctx, "", func(uc usecase.CatalogUsecase) error {
		start := time.Now()

		result, err := uc.ImportCatalog(ctx, file, info.Size())
		if err != nil {
			return err
		}

		fmt.Printf("✅ Imported %d products, skipped %d rows in %s\n",
			result.Imported, result.Skipped, util.FormatDuration(time.Since(start)))

		return nil
	})
}

func runExportFile(ctx context.Context, path string) error {
	return withCatalog(ctx, "", func(uc usecase.CatalogUsecase) error {
		file, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}

		count, err := uc.ExportCatalog(ctx, file)
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "failed to close output file")
		}
		if err != nil {
			return err
		}

		info, err := os.Stat(path)
		if err != nil {
			return errors.Wrap(err, "failed to stat output file")
		}

		fmt.Printf("✅ Exported %d products to %s (%s)\n", count, path, util.FormatBytes(info.Size()))

		return nil
	})
}

func runExportBucket(ctx context.Context, bucketURL, key string) error {
	return withCatalog(ctx, bucketURL, func(uc usecase.CatalogUsecase) error {
		location, err := uc.ArchiveCatalog(ctx, key)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Catalog archived to %s\n", location)

		return nil
	})
}
