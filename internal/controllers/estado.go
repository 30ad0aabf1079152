// Package controllers coordena o ciclo de carga das telas de lista e de
// detalhe do console. Um controlador guarda o último resultado bom, o estado
// corrente e um contador de geração: quando cargas concorrentes se cruzam,
// só a resposta da carga mais recente pode mexer no estado.
package controllers

// Estado é a fase de carga de uma tela.
type Estado string

const (
	EstadoCarregando Estado = "CARREGANDO"
	EstadoSucesso    Estado = "SUCESSO"
	EstadoVazio      Estado = "VAZIO"
	EstadoErro       Estado = "ERRO"
)

// MotivoVazio distingue uma base sem registros de um filtro sem resultado.
type MotivoVazio string

const (
	VazioSemRegistros       MotivoVazio = "SEM_REGISTROS"
	VazioSemCorrespondencia MotivoVazio = "SEM_CORRESPONDENCIA"
)
