package usecase

import "context"

// DefaultBatchLimit teto de escritas por lote atômico do armazenamento.
const DefaultBatchLimit = 500

// CascadePolicy controla as cascatas de exclusão (categoria → produtos, produto → movimentos).
// Com AllBatches=false um único lote é gravado e o excedente fica sem alterar.
type CascadePolicy struct {
	BatchLimit int
	AllBatches bool
}

// DefaultCascadePolicy um lote de 500, sem repetir.
func DefaultCascadePolicy() CascadePolicy {
	return CascadePolicy{BatchLimit: DefaultBatchLimit}
}

func (p CascadePolicy) limit() int {
	if p.BatchLimit <= 0 {
		return DefaultBatchLimit
	}
	return p.BatchLimit
}

// batchStep grava um lote de no máximo limit documentos.
type batchStep func(ctx context.Context, limit int) (n int, remaining bool, err error)

// run executa step uma vez, ou em sequência até esvaziar quando AllBatches.
// Cada lote é atômico por si; o conjunto não é.
func (p CascadePolicy) run(ctx context.Context, step batchStep) (total int, remaining bool, err error) {
	for {
		n, more, err := step(ctx, p.limit())
		total += n
		if err != nil {
			return total, more, err
		}
		if !more || !p.AllBatches || n == 0 {
			return total, more, nil
		}
		if err := ctx.Err(); err != nil {
			return total, more, err
		}
	}
}
