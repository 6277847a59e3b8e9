package model

// Status is a debt's situational label. The set below covers the labels the
// ledger dashboard acts on; unrecognized labels pass through as opaque
// values and still surface in filter option lists.
type Status string

// Known status labels.
const (
	StatusOverdue           Status = "Vencido"
	StatusUpcoming          Status = "A Vencer"
	StatusPaid              Status = "Pago"
	StatusIgnored           Status = "Ignorado"
	StatusInstallmentOrigin Status = "Origem do Parcelamento"
)

// Active reports whether the status counts toward active debt KPIs.
func (s Status) Active() bool {
	return s == StatusOverdue || s == StatusUpcoming
}

// DebtType is the derived classification of a debt, keyword-matched from
// its display name during normalization.
type DebtType string

// Classified debt types.
const (
	TypeIRPJ        DebtType = "IRPJ"
	TypeCSLL        DebtType = "CSLL"
	TypePIS         DebtType = "PIS"
	TypeCOFINS      DebtType = "COFINS"
	TypeISS         DebtType = "ISS"
	TypeInstallment DebtType = "Parcelamento"
	TypeFGTS        DebtType = "FGTS"
	TypeIOF         DebtType = "IOF"
	TypePayroll     DebtType = "Folha"
	TypeOther       DebtType = "Outro"
)

// InstallmentProgress holds the paid/total installment counts and monetary
// progress extracted from an installment plan's free-text fields. Each
// field comes from an independent pattern match and may be absent.
type InstallmentProgress struct {
	PaidCount        *int
	TotalCount       *int
	TotalValue       *float64
	RemainingBalance *float64
}

// DebtEntity is the canonical unit of the ledger. Entities are created once
// per load by the normalizer and are immutable afterward except for Status,
// which only the bulk-mutation operation rewrites (into a fresh slice, never
// in place).
type DebtEntity struct {
	// ID is assigned sequentially during normalization and is stable for
	// the process lifetime.
	ID                  string
	Company             string
	DebtName            string
	Competence          string
	CompetenceFormatted string
	DueDate             string
	Principal           float64
	Penalty             float64
	Interest            float64
	Total               float64
	Status              Status
	Type                DebtType

	// Installment is populated iff Type == TypeInstallment.
	Installment *InstallmentProgress

	// SubRows holds installment-origin rows threaded under this plan, in
	// source order. Sub-rows never nest further.
	SubRows []DebtEntity
}
