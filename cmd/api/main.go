package main

import (
	"log"

	"github.com/joho/godotenv"
)

// @title           ERP Multiloja API
// @version         1.0
// @description     API de sincronização, compartilhamento de recursos e relatórios da rede de lojas
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Criar aplicação
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Erro ao inicializar a aplicação: %v", err)
	}
	defer app.Close()

	app.SetupRoutes("/api/v1")

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}
