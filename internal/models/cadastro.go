package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// saldoInicial travels as a JSON number
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the wire format of Date
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in t's location
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Equal reports whether both values are the same calendar date
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	// Accept full timestamps too and keep only the date part
	if t, err := time.Parse(DateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = NewDate(t)
	return nil
}

// Cadastro represents a registration record
type Cadastro struct {
	ID           int             `json:"id"`
	Nome         string          `json:"nome"`
	Descricao    string          `json:"descricao"`
	Endereco     *string         `json:"endereco"`
	Telefone     *string         `json:"telefone"`
	Email        *string         `json:"email"`
	DataAbertura Date            `json:"dataAbertura"`
	SaldoInicial decimal.Decimal `json:"saldoInicial"`
	TipoConta    string          `json:"tipoConta"`

	// Version is the optimistic concurrency token of the stored row
	Version uint32 `json:"-"`
}

// CadastroInput is the client-supplied part of a Cadastro. id and
// dataAbertura are not accepted from clients.
type CadastroInput struct {
	Nome         string          `json:"nome"`
	Descricao    string          `json:"descricao"`
	Endereco     *string         `json:"endereco"`
	Telefone     *string         `json:"telefone"`
	Email        *string         `json:"email"`
	SaldoInicial decimal.Decimal `json:"saldoInicial"`
	TipoConta    string          `json:"tipoConta"`
}

// CadastroDTO is the list projection of a Cadastro
type CadastroDTO struct {
	ID           int             `json:"id"`
	Nome         string          `json:"nome"`
	Descricao    string          `json:"descricao"`
	Endereco     *string         `json:"endereco"`
	Telefone     *string         `json:"telefone"`
	Email        *string         `json:"email"`
	DataAbertura Date            `json:"dataAbertura"`
	SaldoInicial decimal.Decimal `json:"saldoInicial"`
	TipoConta    string          `json:"tipoConta"`
}

// ToDTO projects the entity to its list shape
func (c *Cadastro) ToDTO() CadastroDTO {
	return CadastroDTO{
		ID:           c.ID,
		Nome:         c.Nome,
		Descricao:    c.Descricao,
		Endereco:     c.Endereco,
		Telefone:     c.Telefone,
		Email:        c.Email,
		DataAbertura: c.DataAbertura,
		SaldoInicial: c.SaldoInicial,
		TipoConta:    c.TipoConta,
	}
}

// ApplyInput overwrites the replaceable fields. saldoInicial is only set on
// creation, so it is not touched here.
func (c *Cadastro) ApplyInput(in CadastroInput) {
	c.Nome = in.Nome
	c.Descricao = in.Descricao
	c.Endereco = in.Endereco
	c.Telefone = in.Telefone
	c.Email = in.Email
	c.TipoConta = in.TipoConta
}
