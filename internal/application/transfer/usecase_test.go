package transfer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-pro/internal/application/dto"
	apptransfer "github.com/tu-usuario/warehouse-pro/internal/application/transfer"
	"github.com/tu-usuario/warehouse-pro/internal/domain"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes. El mutex del txRunner serializa
// las "transacciones" igual que lo haría el bloqueo de fila en PostgreSQL.
type memStore struct {
	mu        sync.Mutex
	transfers map[string]*entity.StockTransfer
	levels    map[string]*entity.StockLevel // company|product|location
	seqs      map[string]int64              // company|type
	products  map[string]*entity.Product
	locations map[string]*entity.Location
	contacts  map[string]*entity.Contact
}

func newMemStore() *memStore {
	return &memStore{
		transfers: map[string]*entity.StockTransfer{},
		levels:    map[string]*entity.StockLevel{},
		seqs:      map[string]int64{},
		products:  map[string]*entity.Product{},
		locations: map[string]*entity.Location{},
		contacts:  map[string]*entity.Contact{},
	}
}

func levelKey(companyID, productID, locationID string) string {
	return companyID + "|" + productID + "|" + locationID
}

type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	transferRepo repository.StockTransferRepository,
	stockRepo repository.StockLevelRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&fakeTransferRepo{s: r.s}, &fakeStockRepo{s: r.s}, &fakeSeqRepo{s: r.s})
}

type fakeTransferRepo struct{ s *memStore }

func (r *fakeTransferRepo) Create(t *entity.StockTransfer) error {
	cp := *t
	cp.Moves = append([]entity.StockMove(nil), t.Moves...)
	r.s.transfers[t.ID] = &cp
	return nil
}

func (r *fakeTransferRepo) GetByID(id, companyID string) (*entity.StockTransfer, error) {
	t, ok := r.s.transfers[id]
	if !ok || t.CompanyID != companyID {
		return nil, nil
	}
	cp := *t
	cp.Moves = append([]entity.StockMove(nil), t.Moves...)
	return &cp, nil
}

func (r *fakeTransferRepo) GetForUpdate(id, companyID string) (*entity.StockTransfer, error) {
	return r.GetByID(id, companyID)
}

func (r *fakeTransferRepo) MarkValidated(id string, effectiveDate time.Time) error {
	t := r.s.transfers[id]
	t.Status = entity.TransferStatusDone
	t.EffectiveDate = &effectiveDate
	for i := range t.Moves {
		t.Moves[i].Status = entity.TransferStatusDone
	}
	return nil
}

func (r *fakeTransferRepo) UpdateStatus(id, status string) error {
	t := r.s.transfers[id]
	t.Status = status
	for i := range t.Moves {
		t.Moves[i].Status = status
	}
	return nil
}

func (r *fakeTransferRepo) Delete(id string) error {
	delete(r.s.transfers, id)
	return nil
}

func (r *fakeTransferRepo) ListByCompany(companyID string, filter repository.TransferFilter, limit, offset int) ([]*entity.StockTransfer, error) {
	var out []*entity.StockTransfer
	for _, t := range r.s.transfers {
		if t.CompanyID != companyID {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) Get(companyID, productID, locationID string) (*entity.StockLevel, error) {
	if l, ok := r.s.levels[levelKey(companyID, productID, locationID)]; ok {
		cp := *l
		return &cp, nil
	}
	return &entity.StockLevel{CompanyID: companyID, ProductID: productID, LocationID: locationID}, nil
}

func (r *fakeStockRepo) GetForUpdate(companyID, productID, locationID string) (*entity.StockLevel, error) {
	return r.Get(companyID, productID, locationID)
}

func (r *fakeStockRepo) Upsert(level *entity.StockLevel) error {
	cp := *level
	r.s.levels[levelKey(level.CompanyID, level.ProductID, level.LocationID)] = &cp
	return nil
}

func (r *fakeStockRepo) CurrentStock(companyID string, filter repository.StockFilter, limit, offset int) ([]repository.StockLine, error) {
	var lines []repository.StockLine
	for _, l := range r.s.levels {
		if l.CompanyID != companyID || l.Quantity == 0 {
			continue
		}
		if filter.ProductID != "" && l.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID != "" && l.LocationID != filter.LocationID {
			continue
		}
		line := repository.StockLine{
			ProductID:  l.ProductID,
			LocationID: l.LocationID,
			Quantity:   l.Quantity,
		}
		if p, ok := r.s.products[l.ProductID]; ok {
			line.ProductName = p.Name
			line.SKU = p.SKU
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *fakeStockRepo) CountLowStock(companyID string) (int, error) {
	count := 0
	for _, p := range r.s.products {
		if p.CompanyID != companyID {
			continue
		}
		var total int64
		for _, l := range r.s.levels {
			if l.CompanyID == companyID && l.ProductID == p.ID {
				total += l.Quantity
			}
		}
		if entity.IsLowStock(p.MinStock, total) {
			count++
		}
	}
	return count, nil
}

type fakeSeqRepo struct{ s *memStore }

func (r *fakeSeqRepo) Next(companyID, transferType string) (int64, error) {
	key := companyID + "|" + transferType
	r.s.seqs[key]++
	return r.s.seqs[key], nil
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) CountByCompany(companyID string) (int, error) {
	n := 0
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }

type fakeLocationRepo struct{ s *memStore }

func (r *fakeLocationRepo) Create(l *entity.Location) error { r.s.locations[l.ID] = l; return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}
func (r *fakeLocationRepo) Update(*entity.Location) error { return nil }
func (r *fakeLocationRepo) ListByCompany(string, int, int) ([]*entity.Location, error) {
	return nil, nil
}
func (r *fakeLocationRepo) ListByWarehouse(string) ([]*entity.Location, error) { return nil, nil }
func (r *fakeLocationRepo) Delete(id string) error                             { delete(r.s.locations, id); return nil }

type fakeContactRepo struct{ s *memStore }

func (r *fakeContactRepo) Create(c *entity.Contact) error { r.s.contacts[c.ID] = c; return nil }
func (r *fakeContactRepo) GetByID(id string) (*entity.Contact, error) {
	c, ok := r.s.contacts[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeContactRepo) Update(*entity.Contact) error { return nil }
func (r *fakeContactRepo) ListByCompany(string, string, int, int) ([]*entity.Contact, error) {
	return nil, nil
}
func (r *fakeContactRepo) Delete(id string) error { delete(r.s.contacts, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "company-a"
	companyB = "company-b"
)

type fixture struct {
	store *memStore
	uc    *apptransfer.UseCase

	productID string
	stockLoc  string // INTERNAL: estantería
	packLoc   string // INTERNAL: zona de empaque
	vendorLoc string // VENDOR virtual
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := newMemStore()
	f := &fixture{
		store:     s,
		productID: "prod-1",
		stockLoc:  "loc-stock",
		packLoc:   "loc-pack",
		vendorLoc: "loc-vendor",
	}
	s.products[f.productID] = &entity.Product{ID: f.productID, CompanyID: companyA, SKU: "SKU-1", Name: "Tornillos", MinStock: 0}
	s.locations[f.stockLoc] = &entity.Location{ID: f.stockLoc, CompanyID: companyA, Name: "Estantería A", Type: entity.LocationTypeInternal}
	s.locations[f.packLoc] = &entity.Location{ID: f.packLoc, CompanyID: companyA, Name: "Zona de empaque", Type: entity.LocationTypeInternal}
	s.locations[f.vendorLoc] = &entity.Location{ID: f.vendorLoc, CompanyID: companyA, Name: "Proveedores", Type: entity.LocationTypeVendor}

	f.uc = apptransfer.NewUseCase(
		&fakeTxRunner{s: s},
		&fakeTransferRepo{s: s},
		&fakeProductRepo{s: s},
		&fakeLocationRepo{s: s},
		&fakeContactRepo{s: s},
		nil, // sin cache de vistas
	)
	return f
}

func (f *fixture) quantityAt(productID, locationID string) int64 {
	l, ok := f.store.levels[levelKey(companyA, productID, locationID)]
	if !ok {
		return 0
	}
	return l.Quantity
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_BorradorConReferencia(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(context.Background(), companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeInternal,
		SourceLocationID:      strPtr(f.stockLoc),
		DestinationLocationID: strPtr(f.packLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransferStatusDraft, out.Status)
	assert.Equal(t, "WH/INT/00001", out.Reference)
	assert.Nil(t, out.EffectiveDate, "el borrador no tiene fecha efectiva")
	require.Len(t, out.Moves, 1)
	// Las líneas heredan las ubicaciones del traslado
	assert.Equal(t, f.stockLoc, *out.Moves[0].SourceLocationID)
	assert.Equal(t, f.packLoc, *out.Moves[0].DestinationLocationID)
	assert.Equal(t, entity.TransferStatusDraft, out.Moves[0].Status)

	// Un borrador no mueve stock
	assert.Zero(t, f.quantityAt(f.productID, f.stockLoc))
	assert.Zero(t, f.quantityAt(f.productID, f.packLoc))
}

func TestCreate_ReferenciasSecuencialesPorTipo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in1, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	require.NoError(t, err)
	in2, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	require.NoError(t, err)
	out1, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:             entity.TransferTypeOutgoing,
		SourceLocationID: strPtr(f.stockLoc),
		Items:            []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Contador independiente por tipo
	assert.Equal(t, "WH/IN/00001", in1.Reference)
	assert.Equal(t, "WH/IN/00002", in2.Reference)
	assert.Equal(t, "WH/OUT/00001", out1.Reference)
}

func TestCreate_MismoOrigenYDestino(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeInternal,
		SourceLocationID:      strPtr(f.stockLoc),
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSameLocation)
	assert.Equal(t, "Source and Destination locations cannot be the same.", err.Error())
}

func TestCreate_ValidacionPorCampos(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), companyA, dto.CreateTransferRequest{
		Type:  "TELEPORT",
		Items: nil,
	})
	require.Error(t, err)
	fields, ok := domain.AsFieldErrors(err)
	require.True(t, ok, "debe ser un error de validación por campos")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "items")
}

func TestCreate_CantidadInvalida(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 0}},
	})
	require.Error(t, err)
	fields, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "items[0].quantity")
}

func TestCreate_ProductoDeOtraEmpresa(t *testing.T) {
	f := newFixture(t)
	f.store.products["prod-b"] = &entity.Product{ID: "prod-b", CompanyID: companyB, SKU: "B-1", Name: "Ajeno"}

	_, err := f.uc.Create(context.Background(), companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: "prod-b", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_UbicacionInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr("no-existe"),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_TrasladoInterno(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Stock inicial en la estantería
	require.NoError(t, (&fakeStockRepo{s: f.store}).Upsert(&entity.StockLevel{
		CompanyID: companyA, ProductID: f.productID, LocationID: f.stockLoc, Quantity: 10,
	}))

	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeInternal,
		SourceLocationID:      strPtr(f.stockLoc),
		DestinationLocationID: strPtr(f.packLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 5}},
	})
	require.NoError(t, err)

	out, err := f.uc.Validate(ctx, companyA, created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.TransferStatusDone, out.Status)
	require.NotNil(t, out.EffectiveDate)
	require.Len(t, out.Moves, 1)
	assert.Equal(t, entity.TransferStatusDone, out.Moves[0].Status)

	// Resta en origen, suma en destino: filas independientes
	assert.EqualValues(t, 5, f.quantityAt(f.productID, f.stockLoc))
	assert.EqualValues(t, 5, f.quantityAt(f.productID, f.packLoc))
}

func TestValidate_DobleValidacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		SourceLocationID:      strPtr(f.vendorLoc),
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 7}},
	})
	require.NoError(t, err)

	_, err = f.uc.Validate(ctx, companyA, created.ID)
	require.NoError(t, err)

	_, err = f.uc.Validate(ctx, companyA, created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransferValidated)
	assert.Equal(t, "Transfer already validated", err.Error())

	// El libro se aplicó exactamente una vez
	assert.EqualValues(t, 7, f.quantityAt(f.productID, f.stockLoc))
	assert.EqualValues(t, -7, f.quantityAt(f.productID, f.vendorLoc))
}

func TestValidate_SoloDestino(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Recepción sin origen: solo crea la fila destino
	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 4}},
	})
	require.NoError(t, err)

	_, err = f.uc.Validate(ctx, companyA, created.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 4, f.quantityAt(f.productID, f.stockLoc))
	assert.Len(t, f.store.levels, 1, "no debe crearse fila de origen")
}

func TestValidate_SinStockQuedaNegativo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Entrega sin stock registrado: se permite y la cantidad queda negativa
	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:             entity.TransferTypeOutgoing,
		SourceLocationID: strPtr(f.stockLoc),
		Items:            []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 8}},
	})
	require.NoError(t, err)

	_, err = f.uc.Validate(ctx, companyA, created.ID)
	require.NoError(t, err)

	assert.EqualValues(t, -8, f.quantityAt(f.productID, f.stockLoc))
}

func TestValidate_NoExiste(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Validate(context.Background(), companyA, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidate_DeOtraEmpresa(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.uc.Validate(ctx, companyB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "otra empresa no ve el traslado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete y UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_Borrador(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, companyA, created.ID))

	got, err := f.uc.GetByID(companyA, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete_ValidadoRechazado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = f.uc.Validate(ctx, companyA, created.ID)
	require.NoError(t, err)

	err = f.uc.Delete(ctx, companyA, created.ID)
	assert.ErrorIs(t, err, domain.ErrTransferNotDraft)

	// El traslado y sus efectos siguen intactos
	got, err := f.uc.GetByID(companyA, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, 2, f.quantityAt(f.productID, f.stockLoc))
}

func TestUpdateStatus_Tablero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.UpdateStatus(ctx, companyA, created.ID, entity.TransferStatusWaiting))
	got, err := f.uc.GetByID(companyA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusWaiting, got.Status)

	// Cambiar de estado nunca mueve stock
	assert.Zero(t, f.quantityAt(f.productID, f.stockLoc))
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	f := newFixture(t)
	err := f.uc.UpdateStatus(context.Background(), companyA, "cualquiera", "DONE")
	fields, ok := domain.AsFieldErrors(err)
	require.True(t, ok, "DONE solo se alcanza validando")
	assert.Contains(t, fields, "status")
}

func TestUpdateStatus_ValidadoEsInmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, companyA, dto.CreateTransferRequest{
		Type:                  entity.TransferTypeIncoming,
		DestinationLocationID: strPtr(f.stockLoc),
		Items:                 []dto.TransferItemRequest{{ProductID: f.productID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = f.uc.Validate(ctx, companyA, created.ID)
	require.NoError(t, err)

	err = f.uc.UpdateStatus(ctx, companyA, created.ID, entity.TransferStatusCanceled)
	assert.ErrorIs(t, err, domain.ErrTransferValidated)
}
