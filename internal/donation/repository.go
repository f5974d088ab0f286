package donation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	ListAll(ctx context.Context) ([]Donation, error)
	ListByFarmer(ctx context.Context, farmerID uint) ([]Donation, error)
	GetByID(ctx context.Context, id uint) (Donation, error)
	UpdateStatus(ctx context.Context, d *Donation) error
	MarkDistributed(ctx context.Context, id uint, at time.Time) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Donation) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO donations
			(farmer_id, images, account_number, ifsc_code, bank_holder_name,
			 bank_name, branch_name, donation_purpose, amount_required, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, status, fund_distributed, created_at, updated_at`,
		d.FarmerID, pq.Array(d.Images), d.AccountNumber, d.IFSCCode,
		d.BankHolderName, d.BankName, d.BranchName, d.DonationPurpose,
		d.AmountRequired, d.Note,
	).Scan(&d.ID, &d.Status, &d.FundDistributed, &d.CreatedAt, &d.UpdatedAt)
}

const donationColumns = `d.id, d.farmer_id, d.images, d.account_number, d.ifsc_code,
	d.bank_holder_name, d.bank_name, d.branch_name, d.donation_purpose,
	d.amount_required, d.note, d.status, d.fund_distributed, d.fund_distributed_at,
	d.created_at, d.updated_at, COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.phone, '')`

func scanDonation(row interface{ Scan(...interface{}) error }) (Donation, error) {
	var d Donation
	err := row.Scan(
		&d.ID, &d.FarmerID, pq.Array(&d.Images), &d.AccountNumber, &d.IFSCCode,
		&d.BankHolderName, &d.BankName, &d.BranchName, &d.DonationPurpose,
		&d.AmountRequired, &d.Note, &d.Status, &d.FundDistributed, &d.FundDistributedAt,
		&d.CreatedAt, &d.UpdatedAt, &d.FarmerName, &d.FarmerEmail, &d.FarmerPhone,
	)
	return d, err
}

func (r *repository) ListAll(ctx context.Context) ([]Donation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+donationColumns+`
		 FROM donations d
		 LEFT JOIN users u ON u.id = d.farmer_id
		 ORDER BY d.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (r *repository) ListByFarmer(ctx context.Context, farmerID uint) ([]Donation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+donationColumns+`
		 FROM donations d
		 LEFT JOIN users u ON u.id = d.farmer_id
		 WHERE d.farmer_id = $1
		 ORDER BY d.created_at DESC`,
		farmerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (r *repository) GetByID(ctx context.Context, id uint) (Donation, error) {
	d, err := scanDonation(r.db.QueryRowContext(ctx,
		`SELECT `+donationColumns+`
		 FROM donations d
		 LEFT JOIN users u ON u.id = d.farmer_id
		 WHERE d.id = $1`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Donation{}, ErrNotFound
	}
	return d, err
}

func (r *repository) UpdateStatus(ctx context.Context, d *Donation) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE donations SET status = $1, fund_distributed = $2,
			fund_distributed_at = $3, updated_at = NOW()
		 WHERE id = $4`,
		d.Status, d.FundDistributed, d.FundDistributedAt, d.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) MarkDistributed(ctx context.Context, id uint, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE donations SET fund_distributed = TRUE, fund_distributed_at = $1,
			updated_at = NOW()
		 WHERE id = $2`,
		at, id,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func collect(rows *sql.Rows) ([]Donation, error) {
	donations := []Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
