package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/internal/domain"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/certifying"
	"github.com/vfg2006/atelier-manager-api/pkg/apiErrors"
)

// IssueCertificate emite um certificado de autenticidade para o
// instrumento e devolve o PDF pronto para download
func IssueCertificate(service certifying.CertificateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - IssueCertificate")

		instrumentID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req *domain.IssueCertificateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrValidation, "Erro ao decodificar requisição", nil)
			return
		}

		certificate, pdf, err := service.IssueCertificate(instrumentID, req)
		if err != nil {
			logrus.Error(err)
			writeCertifyingError(w, err, "Erro ao emitir certificado")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=certificado-%s.pdf", certificate.ID))
		w.Header().Set("X-Certificate-ID", certificate.ID)
		w.WriteHeader(http.StatusCreated)

		if _, err := w.Write(pdf); err != nil {
			logrus.WithError(err).Error("Erro ao enviar o PDF do certificado")
		}
	}
}

// ListCertificates lista os certificados emitidos para um instrumento
func ListCertificates(service certifying.CertificateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instrumentID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		certificates, err := service.ListCertificatesByInstrumentID(instrumentID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "Erro ao listar certificados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(certificates)
	}
}

// RenderCertificate reemite o PDF de um certificado já registrado
func RenderCertificate(service certifying.CertificateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		pdf, err := service.RenderCertificate(certificateID)
		if err != nil {
			logrus.Error(err)
			writeCertifyingError(w, err, "Erro ao gerar o PDF do certificado")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=certificado-%s.pdf", certificateID))

		if _, err := w.Write(pdf); err != nil {
			logrus.WithError(err).Error("Erro ao enviar o PDF do certificado")
		}
	}
}

// writeCertifyingError traduz os erros do serviço de certificados para a resposta HTTP
func writeCertifyingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, certifying.ErrInstrumentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Instrumento não encontrado", nil)
	case errors.Is(err, certifying.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
	case errors.Is(err, certifying.ErrCertificateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Certificado não encontrado", nil)
	case errors.Is(err, certifying.ErrMissingAppraiser):
		apiErrors.WriteError(w, apiErrors.ErrValidation, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
