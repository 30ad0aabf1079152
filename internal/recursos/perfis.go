package recursos

import (
	"github.com/leilao-digital/app-console-admin/internal/apiclient"
	"github.com/leilao-digital/app-console-admin/internal/models"
)

type Perfis struct {
	Recurso[models.Perfil]
}

func NovoPerfis(cliente *apiclient.Client) *Perfis {
	return &Perfis{Recurso: novoRecurso[models.Perfil](cliente, "/perfil")}
}
