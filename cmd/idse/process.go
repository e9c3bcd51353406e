package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"idsegen/internal/config"
	"idsegen/internal/domain"
	"idsegen/internal/logging"
	"idsegen/internal/reportexport"
	"idsegen/internal/service"
	"idsegen/internal/storage/local"
	"idsegen/internal/validator"
)

var (
	inputPath  string
	outputDir  string
	reportXLSX string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Valida un batch JSON y genera los archivos IDSE",
	Long: `Lee un batch JSON de movimientos, valida cada movimiento sin detenerse en
los inválidos, escribe un archivo IDSE por grupo (registro patronal, tipo,
periodo) y reporta cada error de validación con su movimiento, campo, valor
y causa. Con --report-xlsx también escribe el reporte como libro de Excel.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&inputPath, "input", "i", "", "ruta del batch JSON (requerido)")
	processCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directorio de salida (default: configuración)")
	processCmd.Flags().StringVar(&reportXLSX, "report-xlsx", "", "ruta del reporte XLSX opcional")
	_ = processCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(versionCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargando configuración: %w", err)
	}
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("leyendo %s: %w", inputPath, err)
	}
	var batch domain.Batch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBatchMalformado, err)
	}

	writer, err := local.NewWriter(outputDir, logger)
	if err != nil {
		return err
	}
	batchValidator := validator.NewBatchValidator(
		cfg.Limits.MaxMovimientosPorEmpresa,
		cfg.Limits.MaxEmpresasPorBatch,
	)
	processor := service.NewProcessor(batchValidator, writer, logger)

	res, err := processor.Process(context.Background(), &batch)
	if err != nil {
		return err
	}

	imprimirResultado(cmd, res)

	if reportXLSX != "" {
		f, err := os.Create(reportXLSX)
		if err != nil {
			return fmt.Errorf("creando %s: %w", reportXLSX, err)
		}
		defer f.Close()
		if err := reportexport.WriteXLSX(res, f); err != nil {
			return err
		}
		cmd.Printf("Reporte XLSX: %s\n", reportXLSX)
	}

	return nil
}

func imprimirResultado(cmd *cobra.Command, res *service.ProcessResult) {
	r := &res.Report
	cmd.Printf("Empresas procesadas:   %d\n", r.TotalEmpresas)
	cmd.Printf("Movimientos totales:   %d\n", r.TotalMovimientos)
	cmd.Printf("Movimientos válidos:   %d\n", r.Validos)
	cmd.Printf("Movimientos inválidos: %d\n", r.Invalidos)
	cmd.Printf("Archivos generados:    %d\n", len(res.Archivos))

	for _, grupo := range r.Errores {
		cmd.Printf("\nEmpresa %s:\n", grupo.RegistroPatronal)
		for _, e := range grupo.Errores {
			cmd.Printf("  movimiento %d  %s  %s=%q: %s\n",
				e.MovimientoIdx, e.Kind, e.Campo, e.Valor, e.Mensaje)
		}
	}

	if len(res.Archivos) > 0 {
		cmd.Println()
		for _, a := range res.Archivos {
			cmd.Printf("  %s (%d movimientos, %d bytes)\n", a.Nombre, a.Movimientos, a.Bytes)
		}
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("idse %s\n", version)
	},
}
