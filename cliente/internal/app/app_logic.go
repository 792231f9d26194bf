package app

import (
	"log"

	"FortressFreecam/shared/config"
)

// startWatcher passa a observar o config.yaml para recarregar em tempo real.
func (a *App) startWatcher() {
	w, err := config.NewWatcher(a.ConfigPath)
	if err != nil {
		log.Printf("[Config] Recarga automática desativada: %v", err)
		return
	}
	a.watcher = w
	log.Printf("[Config] Observando %s", a.ConfigPath)
}

// pollConfig consome eventos do watcher sem bloquear o frame.
func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}

	select {
	case path := <-a.watcher.Events:
		next, err := config.LoadFrom(path)
		if err != nil {
			log.Printf("[Config] Arquivo inválido, mantendo valores atuais: %v", err)
			return
		}
		a.plugin.ApplyConfig(next)
		log.Printf("[Config] Recarregado de %s", path)
	case err := <-a.watcher.Errors:
		log.Printf("[Config] Erro do watcher: %v", err)
	default:
	}
}
