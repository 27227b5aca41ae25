package models

// UploadResponse is returned by /fec/upload and /fec/generate-and-process.
type UploadResponse struct {
	ID         string `json:"id" yaml:"id"`
	Filename   string `json:"filename" yaml:"filename"`
	UploadedAt string `json:"uploaded_at" yaml:"uploaded_at"`
	Status     string `json:"status" yaml:"status"`
	Message    string `json:"message" yaml:"message"`
	NbLignes   int    `json:"nb_lignes" yaml:"nb_lignes"`
}

// HistoryItem is one row of GET /fec/history.
type HistoryItem struct {
	ID          string `json:"id" yaml:"id"`
	Filename    string `json:"filename" yaml:"filename"`
	ProcessedAt string `json:"processed_at" yaml:"processed_at"`
	NbLignes    int    `json:"nb_lignes" yaml:"nb_lignes"`
	Status      string `json:"status" yaml:"status"`
}

// BalanceItem is one account line of the balance générale. Field names
// follow the FEC column names used by the backend.
type BalanceItem struct {
	CompteNum string  `json:"CompteNum" yaml:"compte_num"`
	CompteLib string  `json:"CompteLib" yaml:"compte_lib"`
	Debit     float64 `json:"Debit" yaml:"debit"`
	Credit    float64 `json:"Credit" yaml:"credit"`
	Solde     float64 `json:"Solde" yaml:"solde"`
}

// PosteBilan is a labelled amount within the bilan or compte de résultat.
type PosteBilan struct {
	Poste   string  `json:"poste" yaml:"poste"`
	Montant float64 `json:"montant" yaml:"montant"`
}

// Bilan is the computed balance sheet.
type Bilan struct {
	Actif       []PosteBilan `json:"actif" yaml:"actif"`
	Passif      []PosteBilan `json:"passif" yaml:"passif"`
	TotalActif  float64      `json:"total_actif" yaml:"total_actif"`
	TotalPassif float64      `json:"total_passif" yaml:"total_passif"`
}

// CompteResultat is the computed income statement.
type CompteResultat struct {
	Charges       []PosteBilan `json:"charges" yaml:"charges"`
	Produits      []PosteBilan `json:"produits" yaml:"produits"`
	TotalCharges  float64      `json:"total_charges" yaml:"total_charges"`
	TotalProduits float64      `json:"total_produits" yaml:"total_produits"`
	Resultat      float64      `json:"resultat" yaml:"resultat"`
}

// DetailResponse is the full processing result of GET /fec/{id}.
type DetailResponse struct {
	ID              string         `json:"id" yaml:"id"`
	UserID          string         `json:"user_id" yaml:"user_id"`
	Filename        string         `json:"filename" yaml:"filename"`
	ProcessedAt     string         `json:"processed_at" yaml:"processed_at"`
	NbLignes        int            `json:"nb_lignes" yaml:"nb_lignes"`
	Status          string         `json:"status" yaml:"status"`
	BalanceGenerale []BalanceItem  `json:"balance_generale" yaml:"balance_generale"`
	Bilan           Bilan          `json:"bilan" yaml:"bilan"`
	CompteResultat  CompteResultat `json:"compte_resultat" yaml:"compte_resultat"`
}
