package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "akafinder",
	Short: "akafinder - Extrai pares CVE -> AKA de módulos Metasploit",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
