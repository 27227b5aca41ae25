package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fec-analyzer/cli/internal/credentials"
	"github.com/fec-analyzer/cli/internal/models"
)

func TestUpload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/fec/upload", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		require.Equal(t, "export.csv", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "JournalCode|EcritureNum\n", string(content))

		json.NewEncoder(w).Encode(models.UploadResponse{
			ID: "f1", Filename: header.Filename, Status: "completed", NbLignes: 1,
		})
	}), credentials.NewMemoryStore())

	result, err := client.Upload(context.Background(),
		strings.NewReader("JournalCode|EcritureNum\n"), "export.csv")
	require.NoError(t, err)
	require.Equal(t, "f1", result.ID)
	require.Equal(t, "completed", result.Status)
}

func TestGenerateAndProcess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/fec/generate-and-process", r.URL.Path)
		require.Equal(t, "250", r.URL.Query().Get("nb_lignes"))

		json.NewEncoder(w).Encode(models.UploadResponse{ID: "f2", NbLignes: 250, Status: "completed"})
	}), credentials.NewMemoryStore())

	result, err := client.GenerateAndProcess(context.Background(), 250)
	require.NoError(t, err)
	require.Equal(t, 250, result.NbLignes)
}

func TestGenerateSample(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/fec/generate-sample", r.URL.Path)
		require.Equal(t, "50", r.URL.Query().Get("nb_lignes"))
		w.Write([]byte("raw file bytes"))
	}), credentials.NewMemoryStore())

	data, err := client.GenerateSample(context.Background(), 50)
	require.NoError(t, err)
	require.Equal(t, "raw file bytes", string(data))
}

func TestHistory(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/fec/history", r.URL.Path)
		json.NewEncoder(w).Encode([]models.HistoryItem{
			{ID: "f1", Filename: "a.csv", NbLignes: 10, Status: "completed"},
			{ID: "f2", Filename: "b.csv", NbLignes: 20, Status: "error"},
		})
	}), credentials.NewMemoryStore())

	items, err := client.History(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "b.csv", items[1].Filename)
}

func TestDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/fec/f1", r.URL.Path)
		json.NewEncoder(w).Encode(models.DetailResponse{
			ID:       "f1",
			Filename: "a.csv",
			BalanceGenerale: []models.BalanceItem{
				{CompteNum: "411000", CompteLib: "Clients", Debit: 100, Credit: 40, Solde: 60},
			},
			Bilan: models.Bilan{
				Actif:      []models.PosteBilan{{Poste: "Créances clients", Montant: 60}},
				TotalActif: 60,
			},
			CompteResultat: models.CompteResultat{Resultat: 60},
		})
	}), credentials.NewMemoryStore())

	detail, err := client.Detail(context.Background(), "f1")
	require.NoError(t, err)
	require.Equal(t, "411000", detail.BalanceGenerale[0].CompteNum)
	require.Equal(t, 60.0, detail.Bilan.TotalActif)
	require.Equal(t, 60.0, detail.CompteResultat.Resultat)
}
