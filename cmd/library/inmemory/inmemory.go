package inmemory

import (
	"context"
	"database/sql/driver"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/library-circulation/cmd/library/circulation"
)

const (
	tableBook         = "book"
	tableMember       = "member"
	tableBorrowRecord = "borrow_record"
)

// InMemoryStore keeps the catalog, the roster and the ledger in one memdb.
// A store returned by BeginTx runs every call inside that transaction.
type InMemoryStore struct {
	db  *memdb.MemDB
	exc *memdb.Txn
	seq *atomic.Uint64
}

func NewInMemoryStore() (*InMemoryStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableBook: {
				Name: tableBook,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
			tableMember: {
				Name: tableMember,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
			tableBorrowRecord: {
				Name: tableBorrowRecord,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"member_id": {
						Name:    "member_id",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "MemberID"},
					},
					"book_member": {
						Name:   "book_member",
						Unique: false,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.StringFieldIndex{Field: "BookID"},
								&memdb.StringFieldIndex{Field: "MemberID"},
							},
						},
					},
					"returned": {
						Name:    "returned",
						Unique:  false,
						Indexer: &memdb.BoolFieldIndex{Field: "Returned"},
					},
				},
			},
		},
	}

	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("validating in-memory schema: %w", err)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db, seq: &atomic.Uint64{}}, nil
}

// Stored rows carry Seq so listings come back in insertion order.

type storedBook struct {
	ID              string
	Seq             uint64
	Title           string
	Author          string
	TotalCopies     int
	AvailableCopies int
}

func adaptBookToStored(b circulation.Book, seq uint64) storedBook {
	return storedBook{
		ID:              b.ID,
		Seq:             seq,
		Title:           b.Title,
		Author:          b.Author,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

func (b storedBook) book() circulation.Book {
	return circulation.Book{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

type storedMember struct {
	ID   string
	Seq  uint64
	Name string
}

func (m storedMember) member() circulation.Member {
	return circulation.Member{ID: m.ID, Name: m.Name}
}

type storedRecord struct {
	ID         string
	Seq        uint64
	BookID     string
	MemberID   string
	BorrowDate time.Time
	DueDate    time.Time
	Returned   bool
	ReturnDate time.Time
}

func adaptRecordToStored(r circulation.BorrowRecord, seq uint64) storedRecord {
	return storedRecord{
		ID:         r.ID.String(),
		Seq:        seq,
		BookID:     r.BookID,
		MemberID:   r.MemberID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.DueDate,
		Returned:   r.Returned,
		ReturnDate: r.ReturnDate,
	}
}

func (r storedRecord) record() circulation.BorrowRecord {
	return circulation.BorrowRecord{
		ID:         uuid.MustParse(r.ID),
		BookID:     r.BookID,
		MemberID:   r.MemberID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.DueDate,
		Returned:   r.Returned,
		ReturnDate: r.ReturnDate,
	}
}

// -- Books --

func (store *InMemoryStore) CreateBook(ctx context.Context, bookEntry circulation.Book) (circulation.Book, error) {
	txn, commit, end := store.txn(true)
	defer end()

	raw, err := txn.First(tableBook, "id", bookEntry.ID)
	if err != nil {
		return circulation.Book{}, fmt.Errorf("storing book on db: %w", err)
	}
	if raw != nil {
		return circulation.Book{}, fmt.Errorf("storing book %q on db: %w", bookEntry.ID, circulation.ErrResponseBookConflict)
	}

	stored := adaptBookToStored(bookEntry, store.seq.Add(1))
	if err := txn.Insert(tableBook, stored); err != nil {
		return circulation.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	commit()
	return stored.book(), nil
}

func (store *InMemoryStore) GetBookByID(ctx context.Context, id string) (circulation.Book, error) {
	txn, _, end := store.txn(false)
	defer end()

	raw, err := txn.First(tableBook, "id", id)
	if err != nil {
		return circulation.Book{}, fmt.Errorf("searching book by ID: %w", err)
	}
	if raw == nil {
		return circulation.Book{}, fmt.Errorf("searching book %q: %w", id, circulation.ErrResponseBookNotFound)
	}

	return raw.(storedBook).book(), nil
}

func (store *InMemoryStore) ListBooks(ctx context.Context) ([]circulation.Book, error) {
	txn, _, end := store.txn(false)
	defer end()

	it, err := txn.Get(tableBook, "id")
	if err != nil {
		return []circulation.Book{}, fmt.Errorf("listing books from db: %w", err)
	}

	stored := []storedBook{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		stored = append(stored, obj.(storedBook))
	}
	sort.Slice(stored, func(i, j int) bool {
		return stored[i].Seq < stored[j].Seq
	})

	books := make([]circulation.Book, 0, len(stored))
	for _, b := range stored {
		books = append(books, b.book())
	}
	return books, nil
}

/* Overwrites the available copies of a book, refusing values outside [0, total]. */
func (store *InMemoryStore) SetAvailableCopies(ctx context.Context, id string, available int) (circulation.Book, error) {
	txn, commit, end := store.txn(true)
	defer end()

	raw, err := txn.First(tableBook, "id", id)
	if err != nil {
		return circulation.Book{}, fmt.Errorf("updating book on db: %w", err)
	}
	if raw == nil {
		return circulation.Book{}, fmt.Errorf("updating book %q on db: %w", id, circulation.ErrResponseBookNotFound)
	}

	updatedBook := raw.(storedBook)
	if available < 0 || available > updatedBook.TotalCopies {
		return circulation.Book{}, fmt.Errorf("updating book %q to %d of %d copies: %w", id, available, updatedBook.TotalCopies, circulation.ErrResponseInventoryInconsistent)
	}
	updatedBook.AvailableCopies = available

	if err := txn.Insert(tableBook, updatedBook); err != nil {
		return circulation.Book{}, fmt.Errorf("updating book on db: %w", err)
	}

	commit()
	return updatedBook.book(), nil
}

// -- Members --

func (store *InMemoryStore) CreateMember(ctx context.Context, m circulation.Member) (circulation.Member, error) {
	txn, commit, end := store.txn(true)
	defer end()

	raw, err := txn.First(tableMember, "id", m.ID)
	if err != nil {
		return circulation.Member{}, fmt.Errorf("storing member on db: %w", err)
	}
	if raw != nil {
		return circulation.Member{}, fmt.Errorf("storing member %q on db: %w", m.ID, circulation.ErrResponseMemberConflict)
	}

	stored := storedMember{ID: m.ID, Seq: store.seq.Add(1), Name: m.Name}
	if err := txn.Insert(tableMember, stored); err != nil {
		return circulation.Member{}, fmt.Errorf("storing member on db: %w", err)
	}

	commit()
	return stored.member(), nil
}

func (store *InMemoryStore) GetMemberByID(ctx context.Context, id string) (circulation.Member, error) {
	txn, _, end := store.txn(false)
	defer end()

	raw, err := txn.First(tableMember, "id", id)
	if err != nil {
		return circulation.Member{}, fmt.Errorf("searching member by ID: %w", err)
	}
	if raw == nil {
		return circulation.Member{}, fmt.Errorf("searching member %q: %w", id, circulation.ErrResponseMemberNotFound)
	}

	return raw.(storedMember).member(), nil
}

func (store *InMemoryStore) ListMembers(ctx context.Context) ([]circulation.Member, error) {
	txn, _, end := store.txn(false)
	defer end()

	it, err := txn.Get(tableMember, "id")
	if err != nil {
		return []circulation.Member{}, fmt.Errorf("listing members from db: %w", err)
	}

	stored := []storedMember{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		stored = append(stored, obj.(storedMember))
	}
	sort.Slice(stored, func(i, j int) bool {
		return stored[i].Seq < stored[j].Seq
	})

	members := make([]circulation.Member, 0, len(stored))
	for _, m := range stored {
		members = append(members, m.member())
	}
	return members, nil
}

// -- Ledger --

func (store *InMemoryStore) CreateBorrowRecord(ctx context.Context, r circulation.BorrowRecord) (circulation.BorrowRecord, error) {
	txn, commit, end := store.txn(true)
	defer end()

	stored := adaptRecordToStored(r, store.seq.Add(1))
	if err := txn.Insert(tableBorrowRecord, stored); err != nil {
		return circulation.BorrowRecord{}, fmt.Errorf("storing borrow record on db: %w", err)
	}

	commit()
	return stored.record(), nil
}

/* Flips an open record to returned. A record that is already returned is reported as not borrowed. */
func (store *InMemoryStore) MarkReturned(ctx context.Context, id uuid.UUID, returnedOn time.Time) (circulation.BorrowRecord, error) {
	txn, commit, end := store.txn(true)
	defer end()

	raw, err := txn.First(tableBorrowRecord, "id", id.String())
	if err != nil {
		return circulation.BorrowRecord{}, fmt.Errorf("returning record on db: %w", err)
	}
	if raw == nil || raw.(storedRecord).Returned {
		return circulation.BorrowRecord{}, fmt.Errorf("returning record %s on db: %w", id, circulation.ErrResponseNotBorrowed)
	}

	updated := raw.(storedRecord)
	updated.Returned = true
	updated.ReturnDate = returnedOn

	if err := txn.Insert(tableBorrowRecord, updated); err != nil {
		return circulation.BorrowRecord{}, fmt.Errorf("returning record on db: %w", err)
	}

	commit()
	return updated.record(), nil
}

/* Scans the ledger through the narrowest index the filter allows, in insertion order. */
func (store *InMemoryStore) ListBorrowRecords(ctx context.Context, filter circulation.RecordFilter) ([]circulation.BorrowRecord, error) {
	txn, _, end := store.txn(false)
	defer end()

	var (
		it  memdb.ResultIterator
		err error
	)
	switch {
	case filter.BookID != "" && filter.MemberID != "":
		it, err = txn.Get(tableBorrowRecord, "book_member", filter.BookID, filter.MemberID)
	case filter.MemberID != "":
		it, err = txn.Get(tableBorrowRecord, "member_id", filter.MemberID)
	case filter.OpenOnly:
		it, err = txn.Get(tableBorrowRecord, "returned", false)
	default:
		it, err = txn.Get(tableBorrowRecord, "id")
	}
	if err != nil {
		return []circulation.BorrowRecord{}, fmt.Errorf("listing borrow records from db: %w", err)
	}

	stored := []storedRecord{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		r := obj.(storedRecord)
		if filter.OpenOnly && r.Returned {
			continue
		}
		if filter.BookID != "" && r.BookID != filter.BookID {
			continue
		}
		if filter.MemberID != "" && r.MemberID != filter.MemberID {
			continue
		}
		stored = append(stored, r)
	}
	sort.Slice(stored, func(i, j int) bool {
		return stored[i].Seq < stored[j].Seq
	})

	records := make([]circulation.BorrowRecord, 0, len(stored))
	for _, r := range stored {
		records = append(records, r.record())
	}
	return records, nil
}

func (store *InMemoryStore) CountActiveBorrows(ctx context.Context, memberID string) (int, error) {
	txn, _, end := store.txn(false)
	defer end()

	it, err := txn.Get(tableBorrowRecord, "member_id", memberID)
	if err != nil {
		return 0, fmt.Errorf("counting active borrows from db: %w", err)
	}

	count := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if !obj.(storedRecord).Returned {
			count++
		}
	}
	return count, nil
}

// -- Transactions --

func (store *InMemoryStore) BeginTx(ctx context.Context) (circulation.Repository, driver.Tx, error) {
	txn := store.db.Txn(true)
	if txn == nil {
		return nil, nil, fmt.Errorf("failed to create transaction")
	}

	txWrapper := &TxWrapper{txn: txn}
	txStore := &InMemoryStore{
		db:  store.db,
		exc: txWrapper.txn,
		seq: store.seq,
	}

	return txStore, txWrapper, nil
}

type TxWrapper struct {
	txn *memdb.Txn
}

func (tx *TxWrapper) Commit() error {
	tx.txn.Commit()
	return nil
}

// Rollback is a no-op once the transaction has been committed.
func (tx *TxWrapper) Rollback() error {
	tx.txn.Abort()
	return nil
}

// txn hands out the enclosing transaction when the store belongs to one,
// otherwise a fresh transaction that commit and end close.
func (store *InMemoryStore) txn(write bool) (txn *memdb.Txn, commit func(), end func()) {
	if store.exc != nil { //It means this method is being called inside a larger transaction.
		return store.exc, func() {}, func() {}
	}
	txn = store.db.Txn(write)
	return txn, txn.Commit, txn.Abort
}
