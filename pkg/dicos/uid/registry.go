package uid

import (
	"sync"

	"github.com/jpfielding/dicomdict/pkg/dicos/transfer"
)

// Well-known UIDs
var (
	Verification             = UID{Value: "1.2.840.10008.1.1", Name: "Verification SOP Class", Type: SOPClass}
	ApplicationContext       = UID{Value: "1.2.840.10008.3.1.1.1", Name: "DICOM Application Context Name", Type: ApplicationContextName}
	DCM                      = UID{Value: "1.2.840.10008.2.16.4", Name: "DICOM Controlled Terminology", Type: CodingScheme}
	TalairachBrainAtlas      = UID{Value: "1.2.840.10008.1.4.1.1", Name: "Talairach Brain Atlas Frame of Reference", Type: FrameOfReference}
	UTC                      = UID{Value: "1.2.840.10008.15.1.1", Name: "Universal Coordinated Time", Type: SynchronizationFrameOfReference}
	StorageCommitmentPush    = UID{Value: "1.2.840.10008.1.20.1", Name: "Storage Commitment Push Model SOP Class", Type: SOPClass}
	StorageCommitmentPushIns = UID{Value: "1.2.840.10008.1.20.1.1", Name: "Storage Commitment Push Model SOP Instance", Type: SOPInstance}
	ModalityWorklistFind     = UID{Value: "1.2.840.10008.5.1.4.31", Name: "Modality Worklist Information Model - FIND", Type: SOPClass}
	PatientRootQRFind        = UID{Value: "1.2.840.10008.5.1.4.1.2.1.1", Name: "Patient Root Query/Retrieve Information Model - FIND", Type: SOPClass}
	StudyRootQRFind          = UID{Value: "1.2.840.10008.5.1.4.1.2.2.1", Name: "Study Root Query/Retrieve Information Model - FIND", Type: SOPClass}
	StudyRootQRMove          = UID{Value: "1.2.840.10008.5.1.4.1.2.2.2", Name: "Study Root Query/Retrieve Information Model - MOVE", Type: SOPClass}
	BasicGrayscalePrintMeta  = UID{Value: "1.2.840.10008.5.1.1.9", Name: "Basic Grayscale Print Management Meta SOP Class", Type: MetaSOPClass}
	PrinterSOPInstance       = UID{Value: "1.2.840.10008.5.1.1.17", Name: "Printer SOP Instance", Type: SOPInstance}
	DICOMContentMapping      = UID{Value: "1.2.840.10008.8.1.1", Name: "DICOM Content Mapping Resource", Type: MappingResource}
)

// Storage SOP classes
var (
	ComputedRadiographyImageStorage    = UID{Value: "1.2.840.10008.5.1.4.1.1.1", Name: "Computed Radiography Image Storage", Type: SOPClass}
	DigitalXRayImageStoragePresent     = UID{Value: "1.2.840.10008.5.1.4.1.1.1.1", Name: "Digital X-Ray Image Storage - For Presentation", Type: SOPClass}
	DigitalXRayImageStorageProcess     = UID{Value: "1.2.840.10008.5.1.4.1.1.1.1.1", Name: "Digital X-Ray Image Storage - For Processing", Type: SOPClass}
	CTImageStorage                     = UID{Value: "1.2.840.10008.5.1.4.1.1.2", Name: "CT Image Storage", Type: SOPClass}
	EnhancedCTImageStorage             = UID{Value: "1.2.840.10008.5.1.4.1.1.2.1", Name: "Enhanced CT Image Storage", Type: SOPClass}
	UltrasoundMultiFrameImageStorage   = UID{Value: "1.2.840.10008.5.1.4.1.1.3.1", Name: "Ultrasound Multi-frame Image Storage", Type: SOPClass}
	MRImageStorage                     = UID{Value: "1.2.840.10008.5.1.4.1.1.4", Name: "MR Image Storage", Type: SOPClass}
	EnhancedMRImageStorage             = UID{Value: "1.2.840.10008.5.1.4.1.1.4.1", Name: "Enhanced MR Image Storage", Type: SOPClass}
	UltrasoundImageStorage             = UID{Value: "1.2.840.10008.5.1.4.1.1.6.1", Name: "Ultrasound Image Storage", Type: SOPClass}
	SecondaryCaptureImageStorage       = UID{Value: "1.2.840.10008.5.1.4.1.1.7", Name: "Secondary Capture Image Storage", Type: SOPClass}
	XRayAngiographicImageStorage       = UID{Value: "1.2.840.10008.5.1.4.1.1.12.1", Name: "X-Ray Angiographic Image Storage", Type: SOPClass}
	NuclearMedicineImageStorage        = UID{Value: "1.2.840.10008.5.1.4.1.1.20", Name: "Nuclear Medicine Image Storage", Type: SOPClass}
	PETImageStorage                    = UID{Value: "1.2.840.10008.5.1.4.1.1.128", Name: "Positron Emission Tomography Image Storage", Type: SOPClass}
	RTImageStorage                     = UID{Value: "1.2.840.10008.5.1.4.1.1.481.1", Name: "RT Image Storage", Type: SOPClass}
	RTDoseStorage                      = UID{Value: "1.2.840.10008.5.1.4.1.1.481.2", Name: "RT Dose Storage", Type: SOPClass}
	RTStructureSetStorage              = UID{Value: "1.2.840.10008.5.1.4.1.1.481.3", Name: "RT Structure Set Storage", Type: SOPClass}
	RTPlanStorage                      = UID{Value: "1.2.840.10008.5.1.4.1.1.481.5", Name: "RT Plan Storage", Type: SOPClass}
	VLPhotographicImageStorage         = UID{Value: "1.2.840.10008.5.1.4.1.1.77.1.4", Name: "VL Photographic Image Storage", Type: SOPClass}
	VLWholeSlideMicroscopyImageStorage = UID{Value: "1.2.840.10008.5.1.4.1.1.77.1.6", Name: "VL Whole Slide Microscopy Image Storage", Type: SOPClass}
	DICOSCTImageStorage                = UID{Value: "1.2.840.10008.5.1.4.1.1.501.1", Name: "DICOS CT Image Storage", Type: SOPClass}
	DICOSDigitalXRayImageStoragePres   = UID{Value: "1.2.840.10008.5.1.4.1.1.501.2.1", Name: "DICOS Digital X-Ray Image Storage - For Presentation", Type: SOPClass}
	DICOSThreatDetectionReportStorage  = UID{Value: "1.2.840.10008.5.1.4.1.1.501.3", Name: "DICOS Threat Detection Report Storage", Type: SOPClass}
)

// Registry classifies known UIDs. It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	uids map[string]UID
}

// NewRegistry creates a registry holding uids
func NewRegistry(uids ...UID) *Registry {
	r := &Registry{uids: make(map[string]UID, len(uids))}
	for _, u := range uids {
		r.Register(u)
	}
	return r
}

// Register adds or replaces u
func (r *Registry) Register(u UID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uids[u.Value] = u
}

// Lookup returns the registered UID for value, or an Unknown UID
func (r *Registry) Lookup(value string) UID {
	value = Normalize(value)
	r.mu.RLock()
	u, ok := r.uids[value]
	r.mu.RUnlock()
	if ok {
		return u
	}
	return New(value)
}

// Len returns the number of registered UIDs
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.uids)
}

// Default is the process-wide registry, seeded with the transfer syntaxes
// and the well-known UIDs above
var Default = NewRegistry(standard()...)

// Lookup classifies value through the Default registry
func Lookup(value string) UID {
	return Default.Lookup(value)
}

// Register adds u to the Default registry
func Register(u UID) {
	Default.Register(u)
}

// FromSyntax returns the UID of a transfer syntax
func FromSyntax(s transfer.Syntax) UID {
	return UID{Value: string(s), Name: s.Name(), Type: TransferSyntax, Retired: s.IsRetired()}
}

func standard() []UID {
	var out []UID
	for _, s := range transfer.All() {
		out = append(out, FromSyntax(s))
	}
	return append(out,
		Verification, ApplicationContext, DCM, TalairachBrainAtlas, UTC,
		StorageCommitmentPush, StorageCommitmentPushIns, ModalityWorklistFind,
		PatientRootQRFind, StudyRootQRFind, StudyRootQRMove, BasicGrayscalePrintMeta,
		PrinterSOPInstance, DICOMContentMapping,
		ComputedRadiographyImageStorage, DigitalXRayImageStoragePresent, DigitalXRayImageStorageProcess,
		CTImageStorage, EnhancedCTImageStorage, UltrasoundMultiFrameImageStorage, MRImageStorage,
		EnhancedMRImageStorage, UltrasoundImageStorage, SecondaryCaptureImageStorage,
		XRayAngiographicImageStorage, NuclearMedicineImageStorage, PETImageStorage,
		RTImageStorage, RTDoseStorage, RTStructureSetStorage, RTPlanStorage,
		VLPhotographicImageStorage, VLWholeSlideMicroscopyImageStorage,
		DICOSCTImageStorage, DICOSDigitalXRayImageStoragePres, DICOSThreatDetectionReportStorage,
	)
}
