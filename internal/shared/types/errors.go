package types

import "errors"

var (
	// ErrConfiguration cobre identificadores obrigatórios ausentes ou inválidos.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrSourceUnavailable: a fatura não foi encontrada ou veio vazia.
	ErrSourceUnavailable = errors.New("billing source unavailable")
	// ErrMalformedData: a fatura tem um campo que não pode ser interpretado.
	ErrMalformedData = errors.New("malformed billing data")
	// ErrHierarchyIntegrity: conta ou OU sem o pai esperado.
	ErrHierarchyIntegrity = errors.New("organization hierarchy integrity error")

	ErrNoBillingSource = errors.New("please specify an AWS account id with --id and a S3 billing bucket with --bucket, unless reading a local billing CSV with --local <filename>")
)
