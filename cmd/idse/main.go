// Command idse processes IDSE movement batches from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "idse",
	Short: "Procesador de movimientos IDSE del IMSS",
	Long: `idse valida lotes de movimientos afiliatorios (altas, bajas y
modificaciones de salario) y genera los archivos de ancho fijo que acepta el
portal IDSE del IMSS, un archivo por combinación de registro patronal, tipo
de movimiento y periodo.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
