package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/telmart/console_api/internal/cache"
	"github.com/telmart/console_api/internal/models"
	"github.com/telmart/console_api/internal/repository"
	"github.com/telmart/console_api/internal/utils"
	"github.com/telmart/console_api/pkg/catalog"
)

// autoMatchHint is surfaced on the session when edit-mode prefill could
// not resolve a sub-SKU selection. It never blocks editing.
const autoMatchHint = "could not auto-match sub-variant"

// FormStore is the session persistence behind FormService. Implemented
// by *cache.FormCache.
type FormStore interface {
	Save(ctx context.Context, session *models.FormSession) error
	Get(ctx context.Context, formID string) (*models.FormSession, error)
	Delete(ctx context.Context, formID string) error
}

// FormService owns product form sessions: cascading selection, field
// locking, validation gating, and submission to the catalog backend.
type FormService struct {
	catalogClient *catalog.Client
	forms         FormStore
	draftRepo     *repository.DraftRepository
	draftTTL      time.Duration
}

// NewFormService constructs a FormService.
func NewFormService(catalogClient *catalog.Client, forms FormStore, draftRepo *repository.DraftRepository, draftTTL time.Duration) *FormService {
	return &FormService{
		catalogClient: catalogClient,
		forms:         forms,
		draftRepo:     draftRepo,
		draftTTL:      draftTTL,
	}
}

// OpenCreate starts a blank form session for a new product.
func (s *FormService) OpenCreate(ctx context.Context, sellerID string) (*models.FormSession, error) {
	session := &models.FormSession{
		ID:       uuid.New().String(),
		SellerID: sellerID,
		Form: models.ProductFormState{
			PurchaseType: models.PurchaseTypePartial,
		},
		Valid:     true,
		Status:    models.FormStatusEditing,
		CreatedAt: time.Now(),
	}
	if err := s.forms.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// OpenEdit starts a form session pre-populated from an existing product.
// When the product lacks an explicit sub-SKU selection, a best-effort
// heuristic match over the family's options fills it in; that match is a
// convenience, so its failure is only surfaced as a non-blocking hint.
func (s *FormService) OpenEdit(ctx context.Context, token, sellerID, productID string) (*models.FormSession, error) {
	product, err := s.catalogClient.GetProduct(ctx, token, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	session := &models.FormSession{
		ID:        uuid.New().String(),
		SellerID:  sellerID,
		ProductID: product.ID,
		Form:      formStateFromProduct(product),
		Status:    models.FormStatusEditing,
		CreatedAt: time.Now(),
	}
	verdict := ValidateForm(&session.Form)
	session.Valid, session.InvalidReason = verdict.Valid, verdict.Reason

	// A product that already carries both the sub-SKU ID and name needs
	// no matching; lock flags stay false.
	if product.SubSkuFamilyID == "" || product.SubSkuFamilyName == "" {
		s.tryAutoMatch(ctx, token, session, product)
	}

	if err := s.forms.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns a form session owned by the seller.
func (s *FormService) Get(ctx context.Context, formID, sellerID string) (*models.FormSession, error) {
	session, err := s.forms.Get(ctx, formID)
	if err != nil {
		if cache.IsNil(err) {
			return nil, utils.ErrFormNotFound
		}
		return nil, err
	}
	if session.SellerID != sellerID {
		return nil, utils.ErrFormNotFound
	}
	return session, nil
}

// Close discards a form session.
func (s *FormService) Close(ctx context.Context, formID, sellerID string) error {
	if _, err := s.Get(ctx, formID, sellerID); err != nil {
		return err
	}
	return s.forms.Delete(ctx, formID)
}

// SelectSkuFamily applies a SKU family selection (nil clears it). The
// sub-SKU selection and the derived attributes are always cleared and
// unlocked, and the family's sub-SKU options are fetched and cached.
// A generation counter guards against a stale fetch overwriting the
// options of a newer selection.
func (s *FormService) SelectSkuFamily(ctx context.Context, token, formID, sellerID string, option *catalog.SkuFamily) (*models.FormSession, error) {
	session, err := s.Get(ctx, formID, sellerID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.FormStatusSubmitting {
		return nil, utils.ErrFormSubmitting
	}

	if option == nil {
		session.Form.SkuFamilyID = ""
		session.Form.Specification = ""
		session.Form.SpecificationName = ""
	} else {
		session.Form.SkuFamilyID = option.ID
		session.Form.Specification = option.Name
		session.Form.SpecificationName = option.Name
	}

	// Unconditional cascade: the old family's variant data is meaningless
	// under the new selection.
	session.Form.SubSkuFamilyID = ""
	session.Form.SubSkuFamilyName = ""
	session.Form.SimType = ""
	session.Form.Color = ""
	session.Form.Country = ""
	session.Locks = models.AttributeLocks{}

	session.OptionsGeneration++
	generation := session.OptionsGeneration
	session.Options = nil

	verdict := ValidateForm(&session.Form)
	session.Valid, session.InvalidReason = verdict.Valid, verdict.Reason
	if err := s.forms.Save(ctx, session); err != nil {
		return nil, err
	}

	if option == nil {
		return session, nil
	}

	options := s.fetchSubSkuOptions(ctx, token, option.ID)
	return s.applyOptions(ctx, formID, generation, options, session)
}

// applyOptions stores a fetched option list only if the session's
// generation still matches the fetch's generation. A reselection that
// happened while the fetch was in flight wins.
func (s *FormService) applyOptions(ctx context.Context, formID string, generation int, options []models.SubSkuOption, fallback *models.FormSession) (*models.FormSession, error) {
	current, err := s.forms.Get(ctx, formID)
	if err != nil {
		if cache.IsNil(err) {
			return nil, utils.ErrFormNotFound
		}
		return nil, err
	}
	if current.OptionsGeneration != generation {
		log.Debug().
			Str("form_id", formID).
			Int("fetch_generation", generation).
			Int("current_generation", current.OptionsGeneration).
			Msg("Discarding stale sub-SKU option fetch")
		return current, nil
	}

	current.Options = options
	if err := s.forms.Save(ctx, current); err != nil {
		return fallback, err
	}
	return current, nil
}

// fetchSubSkuOptions loads the sub-SKU options for a family. A backend
// failure recovers locally as an empty option list.
func (s *FormService) fetchSubSkuOptions(ctx context.Context, token, skuFamilyID string) []models.SubSkuOption {
	families, err := s.catalogClient.ListSubSkuFamilies(ctx, token, "", skuFamilyID)
	if err != nil {
		log.Warn().Err(err).Str("sku_family_id", skuFamilyID).Msg("Failed to fetch sub-SKU options")
		return nil
	}

	options := make([]models.SubSkuOption, 0, len(families))
	for _, f := range families {
		options = append(options, models.SubSkuOption{ID: f.ID, Label: f.Label})
	}
	return options
}

// SelectSubSkuFamily applies a sub-SKU selection by option ID. An empty
// ID clears the selection and unlocks the derived attributes without
// clearing their current values. A non-empty ID is resolved against the
// cached option list; each parsed attribute is adopted only when the
// label supplied a non-empty value, and locked exactly then.
func (s *FormService) SelectSubSkuFamily(ctx context.Context, formID, sellerID, optionID string) (*models.FormSession, error) {
	session, err := s.Get(ctx, formID, sellerID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.FormStatusSubmitting {
		return nil, utils.ErrFormSubmitting
	}

	if optionID == "" {
		session.Form.SubSkuFamilyID = ""
		session.Form.SubSkuFamilyName = ""
		session.Locks = models.AttributeLocks{}
	} else {
		option := session.OptionByID(optionID)
		if option == nil {
			return nil, utils.ErrUnknownOption
		}

		parsed := ParseSubSkuLabel(option.Label)
		session.Form.SubSkuFamilyID = option.ID
		session.Form.SubSkuFamilyName = parsed.Name

		applyParsedAttribute(parsed.SimType, &session.Form.SimType, &session.Locks.SimType)
		applyParsedAttribute(parsed.Color, &session.Form.Color, &session.Locks.Color)
		applyParsedAttribute(parsed.Country, &session.Form.Country, &session.Locks.Country)
	}

	verdict := ValidateForm(&session.Form)
	session.Valid, session.InvalidReason = verdict.Valid, verdict.Reason
	if err := s.forms.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// applyParsedAttribute adopts a parsed value when present, leaving the
// current form value untouched otherwise. The lock flag mirrors presence.
func applyParsedAttribute(parsed *string, field *string, lock *bool) {
	if attributePresent(parsed) {
		*field = *parsed
		*lock = true
	} else {
		*lock = false
	}
}

// FieldChange is one field mutation from the console.
type FieldChange struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

// SetFields applies field mutations in order and revalidates. Edits to a
// locked attribute are rejected; numeric fields pass through their
// character filters; every stock/MOQ/purchase-type change re-applies the
// MOQ synchronization rule.
func (s *FormService) SetFields(ctx context.Context, formID, sellerID string, changes []FieldChange) (*models.FormSession, error) {
	session, err := s.Get(ctx, formID, sellerID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.FormStatusSubmitting {
		return nil, utils.ErrFormSubmitting
	}

	for _, change := range changes {
		if err := s.applyFieldChange(session, change); err != nil {
			return nil, err
		}
	}

	verdict := ValidateForm(&session.Form)
	session.Valid, session.InvalidReason = verdict.Valid, verdict.Reason
	if session.Valid {
		session.InvalidReason = firstInvalidRowReason(session)
		session.Valid = session.InvalidReason == ""
	}
	if err := s.forms.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *FormService) applyFieldChange(session *models.FormSession, change FieldChange) error {
	f := &session.Form
	switch change.Field {
	case "specification":
		return decodeString(change.Value, &f.Specification)
	case "specificationName":
		return decodeString(change.Value, &f.SpecificationName)
	case "simType":
		if session.Locks.SimType {
			return utils.ErrFieldLocked
		}
		return decodeString(change.Value, &f.SimType)
	case "color":
		if session.Locks.Color {
			return utils.ErrFieldLocked
		}
		return decodeString(change.Value, &f.Color)
	case "country":
		if session.Locks.Country {
			return utils.ErrFieldLocked
		}
		return decodeString(change.Value, &f.Country)
	case "ram":
		return decodeString(change.Value, &f.RAM)
	case "storage":
		return decodeString(change.Value, &f.Storage)
	case "condition":
		return decodeString(change.Value, &f.Condition)
	case "price":
		if err := decodeString(change.Value, &f.Price); err != nil {
			return err
		}
		f.Price = filterDecimal(f.Price)
	case "stock":
		if err := decodeString(change.Value, &f.Stock); err != nil {
			return err
		}
		f.Stock = filterInteger(f.Stock)
		syncMOQ(f)
	case "moq":
		if err := decodeString(change.Value, &f.MOQ); err != nil {
			return err
		}
		f.MOQ = filterInteger(f.MOQ)
		syncMOQ(f)
	case "purchaseType":
		var raw string
		if err := decodeString(change.Value, &raw); err != nil {
			return err
		}
		f.PurchaseType = models.NormalizePurchaseType(raw)
		syncMOQ(f)
	case "isNegotiable":
		return decodeBool(change.Value, &f.IsNegotiable)
	case "isFlashDeal":
		return decodeBool(change.Value, &f.IsFlashDeal)
	case "expiryTime":
		return decodeString(change.Value, &f.ExpiryTime)
	default:
		return utils.ErrUnknownField
	}
	return nil
}

// syncMOQ enforces the purchase-type invariant: a full purchase locks
// MOQ to the entire stock.
func syncMOQ(f *models.ProductFormState) {
	if f.PurchaseType == models.PurchaseTypeFull {
		f.MOQ = f.Stock
	}
}

func decodeString(raw json.RawMessage, dst *string) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return utils.ErrUnknownField
	}
	return nil
}

func decodeBool(raw json.RawMessage, dst *bool) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return utils.ErrUnknownField
	}
	return nil
}

// SetVariants replaces the bulk-entry variant rows. Each row passes the
// numeric filters and the per-row MOQ rule; on a full purchase type the
// row's MOQ is forced to its stock, same as the base form.
func (s *FormService) SetVariants(ctx context.Context, formID, sellerID string, rows []models.VariantRow) (*models.FormSession, error) {
	session, err := s.Get(ctx, formID, sellerID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.FormStatusSubmitting {
		return nil, utils.ErrFormSubmitting
	}

	for i := range rows {
		rows[i].Price = filterDecimal(rows[i].Price)
		rows[i].Stock = filterInteger(rows[i].Stock)
		rows[i].MOQ = filterInteger(rows[i].MOQ)
		if session.Form.PurchaseType == models.PurchaseTypeFull {
			rows[i].MOQ = rows[i].Stock
		}
		// Submit progress is server-owned: the client cannot mark a row
		// as accepted, and a row it already got keeps its mark so a
		// retry after a partial failure does not duplicate it.
		rows[i].SubmittedID = ""
		if i < len(session.Variants) {
			rows[i].SubmittedID = session.Variants[i].SubmittedID
		}
	}
	session.Variants = rows

	verdict := ValidateForm(&session.Form)
	session.Valid, session.InvalidReason = verdict.Valid, verdict.Reason
	if session.Valid {
		session.InvalidReason = firstInvalidRowReason(session)
		session.Valid = session.InvalidReason == ""
	}
	if err := s.forms.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// firstInvalidRowReason returns the first failing variant row's reason,
// prefixed with its 1-based row number, or "" when all rows pass.
func firstInvalidRowReason(session *models.FormSession) string {
	for i := range session.Variants {
		if v := ValidateVariantRow(&session.Variants[i], session.Form.PurchaseType); !v.Valid {
			return fmt.Sprintf("Row %d: %s", i+1, v.Reason)
		}
	}
	return ""
}

// AttachMedia appends a staged media URL to the form.
func (s *FormService) AttachMedia(ctx context.Context, formID, sellerID, mediaURL, kind string) (*models.FormSession, error) {
	session, err := s.Get(ctx, formID, sellerID)
	if err != nil {
		return nil, err
	}
	if kind == "video" {
		session.Form.Videos = append(session.Form.Videos, mediaURL)
	} else {
		session.Form.Images = append(session.Form.Images, mediaURL)
	}
	if err := s.forms.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// BuildSubmitPayload normalizes the form into the backend's payload
// shape: specification defaults to specificationName when set, purchase
// type is re-normalized, and numeric fields are coerced to numbers.
func BuildSubmitPayload(f *models.ProductFormState) *catalog.ProductPayload {
	specification := f.Specification
	if f.SpecificationName != "" {
		specification = f.SpecificationName
	}

	return &catalog.ProductPayload{
		Specification:     specification,
		SpecificationName: f.SpecificationName,
		SkuFamilyID:       f.SkuFamilyID,
		SubSkuFamilyID:    f.SubSkuFamilyID,
		SubSkuFamilyName:  f.SubSkuFamilyName,
		SimType:           f.SimType,
		Color:             f.Color,
		RAM:               f.RAM,
		Storage:           f.Storage,
		Condition:         f.Condition,
		Price:             parseFloatField(f.Price),
		Stock:             parseIntField(f.Stock),
		Country:           f.Country,
		MOQ:               parseIntField(f.MOQ),
		PurchaseType:      string(models.NormalizePurchaseType(string(f.PurchaseType))),
		IsNegotiable:      f.IsNegotiable,
		IsFlashDeal:       f.IsFlashDeal,
		ExpiryTime:        f.ExpiryTime,
		Images:            f.Images,
		Videos:            f.Videos,
	}
}

// variantPayload derives a row's payload from the base form with the
// row's overrides applied.
func variantPayload(base *models.ProductFormState, row *models.VariantRow, groupCode string) *catalog.ProductPayload {
	payload := BuildSubmitPayload(base)
	payload.SubSkuFamilyID = row.SubSkuFamilyID
	payload.SubSkuFamilyName = row.SubSkuFamilyName
	payload.SimType = row.SimType
	payload.Color = row.Color
	payload.RAM = row.RAM
	payload.Storage = row.Storage
	if row.Condition != "" {
		payload.Condition = row.Condition
	}
	if row.Country != "" {
		payload.Country = row.Country
	}
	payload.Price = parseFloatField(row.Price)
	payload.Stock = parseIntField(row.Stock)
	payload.MOQ = parseIntField(row.MOQ)
	payload.GroupCode = groupCode
	return payload
}

// SubmitResult reports the backend's accepted products.
type SubmitResult struct {
	Products  []catalog.Product `json:"products"`
	GroupCode string            `json:"groupCode,omitempty"`
}

// Submit forwards the form to the backend. Submission is refused while
// the validation gate is failing, and the SKU family must be chosen by
// submit time. A backend failure returns the session to the editing
// state with the form intact.
func (s *FormService) Submit(ctx context.Context, token, formID, sellerID string) (*SubmitResult, error) {
	session, err := s.Get(ctx, formID, sellerID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.FormStatusSubmitting {
		return nil, utils.ErrFormSubmitting
	}
	if !session.Valid {
		return nil, utils.ErrFormInvalid
	}
	if strings.TrimSpace(session.Form.SkuFamilyID) == "" {
		return nil, utils.ErrSpecificationReq
	}

	session.Status = models.FormStatusSubmitting
	if err := s.forms.Save(ctx, session); err != nil {
		return nil, err
	}

	result, err := s.submit(ctx, token, session)
	if err != nil {
		session.Status = models.FormStatusEditing
		if saveErr := s.forms.Save(ctx, session); saveErr != nil {
			log.Error().Err(saveErr).Str("form_id", session.ID).Msg("Failed to restore form after submit failure")
		}
		return nil, err
	}

	// Adopted by the backend; the session is done.
	if err := s.forms.Delete(ctx, session.ID); err != nil {
		log.Warn().Err(err).Str("form_id", session.ID).Msg("Failed to delete submitted form session")
	}
	return result, nil
}

func (s *FormService) submit(ctx context.Context, token string, session *models.FormSession) (*SubmitResult, error) {
	// Edit mode updates the single product; variant rows only apply to
	// new listings.
	if session.ProductID != "" {
		product, err := s.catalogClient.UpdateProduct(ctx, token, session.ProductID, BuildSubmitPayload(&session.Form))
		if err != nil {
			return nil, err
		}
		return &SubmitResult{Products: []catalog.Product{*product}}, nil
	}

	if len(session.Variants) == 0 {
		product, err := s.catalogClient.CreateProduct(ctx, token, BuildSubmitPayload(&session.Form))
		if err != nil {
			return nil, err
		}
		return &SubmitResult{Products: []catalog.Product{*product}}, nil
	}

	// Bulk entry: one product per row, sharing a group code. The code
	// is minted once and kept on the session so a retry after a partial
	// failure lands the remaining rows in the same group. Rows the
	// backend already accepted carry a SubmittedID and are skipped.
	if session.GroupCode == "" {
		session.GroupCode = uuid.New().String()
	}
	result := &SubmitResult{GroupCode: session.GroupCode}
	for i := range session.Variants {
		row := &session.Variants[i]
		if row.SubmittedID != "" {
			continue
		}
		payload := variantPayload(&session.Form, row, session.GroupCode)
		product, err := s.catalogClient.CreateProduct(ctx, token, payload)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		row.SubmittedID = product.ID
		result.Products = append(result.Products, *product)
	}
	return result, nil
}

// tryAutoMatch searches the product's SKU family options for the first
// one whose parsed color/SIM type/country each either matches the
// product or is not encoded ("don't care"). First match wins in backend
// list order; ties are not disambiguated. Failure leaves only a hint.
func (s *FormService) tryAutoMatch(ctx context.Context, token string, session *models.FormSession, product *catalog.Product) {
	if product.SkuFamilyID == "" {
		return
	}

	options := s.fetchSubSkuOptions(ctx, token, product.SkuFamilyID)
	session.OptionsGeneration++
	session.Options = options

	for i := range options {
		parsed := ParseSubSkuLabel(options[i].Label)
		if !attributeMatches(parsed.Color, session.Form.Color) ||
			!attributeMatches(parsed.SimType, session.Form.SimType) ||
			!attributeMatches(parsed.Country, session.Form.Country) {
			continue
		}

		session.Form.SubSkuFamilyID = options[i].ID
		session.Form.SubSkuFamilyName = parsed.Name
		adoptIfUnset(parsed.SimType, &session.Form.SimType)
		adoptIfUnset(parsed.Color, &session.Form.Color)
		adoptIfUnset(parsed.Country, &session.Form.Country)
		session.Locks = models.AttributeLocks{
			SimType: attributePresent(parsed.SimType),
			Color:   attributePresent(parsed.Color),
			Country: attributePresent(parsed.Country),
		}
		return
	}

	log.Debug().
		Str("product_id", product.ID).
		Str("sku_family_id", product.SkuFamilyID).
		Msg("No sub-SKU option matched product attributes")
	session.AutoMatchHint = autoMatchHint
}

// attributeMatches treats an attribute the label does not encode as a
// wildcard; an encoded one must equal the product's value.
func attributeMatches(parsed *string, value string) bool {
	if !attributePresent(parsed) {
		return true
	}
	return *parsed == value
}

// adoptIfUnset fills an empty form field from a parsed value.
func adoptIfUnset(parsed *string, field *string) {
	if *field == "" && attributePresent(parsed) {
		*field = *parsed
	}
}

// SaveDraft persists the session as a resumable draft.
func (s *FormService) SaveDraft(ctx context.Context, formID, sellerID, title string) (*models.Draft, error) {
	session, err := s.Get(ctx, formID, sellerID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize form session: %w", err)
	}

	if title == "" {
		title = session.Form.SpecificationName
	}
	if title == "" {
		title = "Untitled draft"
	}

	draft := &models.Draft{
		ID:        uuid.New().String(),
		SellerID:  sellerID,
		Title:     title,
		Payload:   payload,
		ExpiresAt: time.Now().Add(s.draftTTL),
	}
	if session.ProductID != "" {
		draft.ProductID = &session.ProductID
	}

	if err := s.draftRepo.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ResumeDraft rehydrates a draft into a fresh form session.
func (s *FormService) ResumeDraft(ctx context.Context, draftID, sellerID string) (*models.FormSession, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID, sellerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrDraftNotFound
		}
		return nil, err
	}

	var session models.FormSession
	if err := json.Unmarshal(draft.Payload, &session); err != nil {
		return nil, fmt.Errorf("failed to restore draft payload: %w", err)
	}

	session.ID = uuid.New().String()
	session.SellerID = sellerID
	session.Status = models.FormStatusEditing
	session.CreatedAt = time.Now()

	verdict := ValidateForm(&session.Form)
	session.Valid, session.InvalidReason = verdict.Valid, verdict.Reason

	if err := s.forms.Save(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListDrafts returns the seller's saved drafts.
func (s *FormService) ListDrafts(ctx context.Context, sellerID string) ([]models.Draft, error) {
	return s.draftRepo.ListBySeller(ctx, sellerID)
}

// DeleteDraft removes a saved draft.
func (s *FormService) DeleteDraft(ctx context.Context, draftID, sellerID string) error {
	err := s.draftRepo.Delete(ctx, draftID, sellerID)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrDraftNotFound
	}
	return err
}

// formStateFromProduct copies a product's fields into a form state.
// Legacy array-valued simType/ram/storage collapse to their first element
// during catalog decoding; purchase type is normalized here.
func formStateFromProduct(p *catalog.Product) models.ProductFormState {
	return models.ProductFormState{
		Specification:     p.Specification,
		SpecificationName: p.SpecificationName,
		SkuFamilyID:       p.SkuFamilyID,
		SubSkuFamilyID:    p.SubSkuFamilyID,
		SubSkuFamilyName:  p.SubSkuFamilyName,
		SimType:           string(p.SimType),
		Color:             p.Color,
		RAM:               string(p.RAM),
		Storage:           string(p.Storage),
		Condition:         p.Condition,
		Price:             formatFloatField(p.Price),
		Stock:             formatIntField(p.Stock),
		Country:           p.Country,
		MOQ:               formatIntField(p.MOQ),
		PurchaseType:      models.NormalizePurchaseType(p.PurchaseType),
		IsNegotiable:      p.IsNegotiable,
		IsFlashDeal:       p.IsFlashDeal,
		ExpiryTime:        p.ExpiryTime,
		Images:            p.Images,
		Videos:            p.Videos,
	}
}
