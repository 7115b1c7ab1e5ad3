package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/ledger"
)

// CompressionAlgo specifies the compression algorithm used for a stored
// archive payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// ArchiveRecord is a stored ledger snapshot.
type ArchiveRecord struct {
	ID              id.ID           `db:"id"`
	Ref             string          `db:"ref"`
	EntryCount      int             `db:"entry_count"`
	Payload         json.RawMessage `db:"payload"`
	PayloadZstd     []byte          `db:"payload_zstd"`
	CompressionAlgo CompressionAlgo `db:"compression_algo"`
	CreatedAt       time.Time       `db:"created_at"`
}

// LedgerArchiver stores ledger snapshots before destructive operations.
// Payloads above the compression threshold are stored zstd-compressed.
type LedgerArchiver struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes, default 10KB
}

var _ ledger.Archiver = (*LedgerArchiver)(nil)

// NewLedgerArchiver creates a new ledger archiver.
func NewLedgerArchiver(txManager *TxManager) (*LedgerArchiver, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &LedgerArchiver{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024, // 10KB
	}, nil
}

// Archive serializes the snapshot and stores it in sys_ledger_archive.
// Returns the reference under which the snapshot was stored.
func (a *LedgerArchiver) Archive(ctx context.Context, snapshot *ledger.Snapshot) (string, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	now := time.Now().UTC()
	rec := ArchiveRecord{
		ID:              id.New(),
		Ref:             fmt.Sprintf("ledger-%s.json.zst", now.Format("20060102T150405")),
		EntryCount:      len(snapshot.StockIn) + len(snapshot.StockOut),
		Payload:         payload,
		CompressionAlgo: CompressionNone,
		CreatedAt:       now,
	}

	if len(rec.Payload) > a.compressThreshold {
		rec.PayloadZstd = a.encoder.EncodeAll(rec.Payload, nil)
		rec.Payload = nil
		rec.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO sys_ledger_archive (
			id, ref, entry_count, payload, payload_zstd, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	querier := a.txManager.GetQuerier(ctx)
	_, err = querier.Exec(ctx, sql,
		rec.ID, rec.Ref, rec.EntryCount,
		rec.Payload, rec.PayloadZstd, rec.CompressionAlgo,
		rec.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert archive record: %w", err)
	}

	return rec.Ref, nil
}

// Load retrieves and decodes a stored snapshot by reference.
func (a *LedgerArchiver) Load(ctx context.Context, ref string) (*ledger.Snapshot, error) {
	sql := `
		SELECT payload, payload_zstd, compression_algo
		FROM sys_ledger_archive
		WHERE ref = $1
	`

	var rec ArchiveRecord
	row := a.txManager.GetQuerier(ctx).QueryRow(ctx, sql, ref)
	if err := row.Scan(&rec.Payload, &rec.PayloadZstd, &rec.CompressionAlgo); err != nil {
		return nil, fmt.Errorf("query archive %s: %w", ref, err)
	}

	data := []byte(rec.Payload)
	if rec.CompressionAlgo == CompressionZstd && len(rec.PayloadZstd) > 0 {
		decompressed, err := a.decoder.DecodeAll(rec.PayloadZstd, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress archive %s: %w", ref, err)
		}
		data = decompressed
	}

	var snap ledger.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal archive %s: %w", ref, err)
	}

	return &snap, nil
}
