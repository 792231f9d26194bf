package posedata

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoseModel é o esquema da tabela de poses lembradas.
// A posição é sempre guardada relativa à âncora de origem da cena.
type PoseModel struct {
	Scene     string `gorm:"primaryKey"`
	X, Y, Z   float32
	Yaw       float32
	Pitch     float32
	UpdatedAt time.Time
}

// Metadata armazena informações globais do banco.
type Metadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const CurrentFormatVersion = 1

// Store persiste a última pose da câmera livre por cena.
type Store struct {
	DB *gorm.DB
}

// Open abre (ou cria) o banco SQLite em dir/name.fv e roda as migrações.
func Open(dir, name string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, fmt.Sprintf("%s.fv", name))

	// Logger silencioso, erros voltam pelo retorno
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&PoseModel{}, &Metadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	if err := db.Save(&Metadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)}).Error; err != nil {
		return nil, fmt.Errorf("falha ao gravar versão do formato: %w", err)
	}

	log.Printf("[Persistence] Banco de poses aberto: %s", dbPath)
	return &Store{DB: db}, nil
}

// SavePose grava (upsert) a pose da cena.
func (s *Store) SavePose(scene string, p Pose) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	model := PoseModel{
		Scene: scene,
		X:     p.Position.X(),
		Y:     p.Position.Y(),
		Z:     p.Position.Z(),
		Yaw:   p.Yaw,
		Pitch: p.Pitch,
	}
	if err := s.DB.Save(&model).Error; err != nil {
		return fmt.Errorf("salvar pose %q: %w", scene, err)
	}
	return nil
}

// LoadPose lê a pose da cena. ok=false quando nada foi salvo ainda.
func (s *Store) LoadPose(scene string) (Pose, bool, error) {
	if s == nil || s.DB == nil {
		return Pose{}, false, fmt.Errorf("banco de dados não inicializado")
	}

	var model PoseModel
	err := s.DB.First(&model, "scene = ?", scene).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Pose{}, false, nil
	}
	if err != nil {
		return Pose{}, false, fmt.Errorf("carregar pose %q: %w", scene, err)
	}

	return Pose{
		Position: mgl32.Vec3{model.X, model.Y, model.Z},
		Yaw:      model.Yaw,
		Pitch:    model.Pitch,
	}, true, nil
}

// Close fecha a conexão com o banco.
func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	s.DB = nil
	return sqlDB.Close()
}
