package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain"
)

func validCarRequest() dto.CreateCarRequest {
	return dto.CreateCarRequest{
		LicensePlate:  "XYZ789",
		CustomerName:  "Ana Prueba",
		CustomerPhone: "3001234567",
		CustomerEmail: "ana@taller.test",
		Make:          "Mazda",
		Model:         "3",
		Year:          2020,
		VIN:           "1HGCM82633A004352",
	}
}

func TestCarCreate_YGetByID(t *testing.T) {
	uc := usecase.NewCarUseCase(&fakeCarRepo{})

	created, err := uc.Create(context.Background(), validCarRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "XYZ789", got.LicensePlate)
	assert.Equal(t, "Mazda", got.Make)
	assert.Equal(t, 2020, got.Year)
}

func TestCarCreate_SinPlaca_ErrorDeValidacion(t *testing.T) {
	uc := usecase.NewCarUseCase(&fakeCarRepo{})

	in := validCarRequest()
	in.LicensePlate = ""
	_, err := uc.Create(context.Background(), in)

	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "license_plate", verr.Fields[0].Field)
}

func TestCarCreate_VINDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc := usecase.NewCarUseCase(&fakeCarRepo{})

	_, err := uc.Create(context.Background(), validCarRequest())
	require.NoError(t, err)

	in := validCarRequest()
	in.LicensePlate = "AAA111"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el VIN repetido debe rechazarse")
}

func TestCarGetByID_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewCarUseCase(&fakeCarRepo{})

	_, err := uc.GetByID(context.Background(), "64f000000000000000000099")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCarUpdate_ParcheParcial_NoTocaElResto(t *testing.T) {
	uc := usecase.NewCarUseCase(&fakeCarRepo{})
	created, err := uc.Create(context.Background(), validCarRequest())
	require.NoError(t, err)

	color := "rojo"
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateCarRequest{Color: &color})
	require.NoError(t, err)

	assert.Equal(t, "rojo", resp.Color)
	assert.Equal(t, "XYZ789", resp.LicensePlate, "los campos no provistos deben conservarse")
	assert.Equal(t, "1HGCM82633A004352", resp.VIN)
}

func TestCarUpdate_VINEnUsoPorOtro_RetornaErrDuplicate(t *testing.T) {
	uc := usecase.NewCarUseCase(&fakeCarRepo{})
	_, err := uc.Create(context.Background(), validCarRequest())
	require.NoError(t, err)

	second := validCarRequest()
	second.LicensePlate = "BBB222"
	second.VIN = "2HGCM82633A004353"
	other, err := uc.Create(context.Background(), second)
	require.NoError(t, err)

	taken := "1HGCM82633A004352"
	_, err = uc.Update(context.Background(), other.ID, dto.UpdateCarRequest{VIN: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCarList_Paginacion(t *testing.T) {
	repo := &fakeCarRepo{}
	uc := usecase.NewCarUseCase(repo)
	for i := 0; i < 5; i++ {
		in := validCarRequest()
		in.LicensePlate = string(rune('A'+i)) + "BC123"
		in.VIN = "" // sin VIN para evitar el chequeo de unicidad
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	items, total, err := uc.List(context.Background(), "", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total, "el total refleja el conjunto completo, no la página")
	assert.Len(t, items, 2)
}

func TestCarDelete_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewCarUseCase(&fakeCarRepo{})

	err := uc.Delete(context.Background(), "64f000000000000000000099")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
