package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"duo-talk/internal/termclient"

	"github.com/spf13/cobra"
)

var (
	nickname string
	fullName string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "duo-talk-client",
		Short: "DuoTalk one-to-one chat client",
		Run:   runClient,
	}

	cobra.OnInitialize(termclient.LoadConfig)

	rootCmd.Flags().StringVarP(&nickname, "nickname", "n", "", "nickname to chat as (required)")
	rootCmd.Flags().StringVarP(&fullName, "fullname", "f", "", "display name")
	rootCmd.MarkFlagRequired("nickname")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runClient(cmd *cobra.Command, args []string) {
	serverURL := termclient.Cfg.Server.URL

	client := termclient.NewClient()
	if err := client.Connect(serverURL, nickname, fullName); err != nil {
		log.Fatalf("Failed to connect to server: %v", err)
	}

	// Depart cleanly on Ctrl-C; otherwise the server keeps us ONLINE.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		client.Disconnect()
		os.Exit(0)
	}()

	client.HandleStdin()
}
