package tag

// Standard DICOM Tags - File Meta Information (Group 0002)
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion     = New(0x0002, 0x0001)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)
	ImplementationClassUID         = New(0x0002, 0x0012)
	ImplementationVersionName      = New(0x0002, 0x0013)
	SpecificCharacterSet           = New(0x0008, 0x0005)
)

// Patient Module (Group 0010)
var (
	PatientName      = New(0x0010, 0x0010)
	PatientID        = New(0x0010, 0x0020)
	PatientBirthDate = New(0x0010, 0x0030)
	PatientSex       = New(0x0010, 0x0040)
	PatientAge       = New(0x0010, 0x1010)
	PatientComments  = New(0x0010, 0x4000)
)

// General Study and Series
var (
	StudyDate         = New(0x0008, 0x0020)
	StudyTime         = New(0x0008, 0x0030)
	AccessionNumber   = New(0x0008, 0x0050)
	Modality          = New(0x0008, 0x0060)
	StudyDescription  = New(0x0008, 0x1030)
	SeriesDescription = New(0x0008, 0x103E)
	StudyInstanceUID  = New(0x0020, 0x000D)
	SeriesInstanceUID = New(0x0020, 0x000E)
	StudyID           = New(0x0020, 0x0010)
	SeriesNumber      = New(0x0020, 0x0011)
	InstanceNumber    = New(0x0020, 0x0013)
)

// SOP Common Module
var (
	ImageType            = New(0x0008, 0x0008)
	InstanceCreationDate = New(0x0008, 0x0012)
	InstanceCreationTime = New(0x0008, 0x0013)
	InstanceCreatorUID   = New(0x0008, 0x0014)
	SOPClassUID          = New(0x0008, 0x0016)
	SOPInstanceUID       = New(0x0008, 0x0018)
)

// References
var (
	ReferencedSeriesSequence           = New(0x0008, 0x1115)
	ReferencedImageSequence            = New(0x0008, 0x1140)
	ReferencedSOPClassUID              = New(0x0008, 0x1150)
	ReferencedSOPInstanceUID           = New(0x0008, 0x1155)
	SourceImageSequence                = New(0x0008, 0x2112)
	FrameOfReferenceUID                = New(0x0020, 0x0052)
	ReferencedFrameOfReferenceUID      = New(0x3006, 0x0024)
	ReferencedFrameOfReferenceSequence = New(0x3006, 0x0010)
	RTReferencedStudySequence          = New(0x3006, 0x0012)
	RTReferencedSeriesSequence         = New(0x3006, 0x0014)
	ContourImageSequence               = New(0x3006, 0x0016)
)

// Image Pixel Module (Group 0028)
var (
	SamplesPerPixel           = New(0x0028, 0x0002)
	PhotometricInterpretation = New(0x0028, 0x0004)
	NumberOfFrames            = New(0x0028, 0x0008)
	Rows                      = New(0x0028, 0x0010)
	Columns                   = New(0x0028, 0x0011)
	PixelSpacing              = New(0x0028, 0x0030)
	BitsAllocated             = New(0x0028, 0x0100)
	BitsStored                = New(0x0028, 0x0101)
	HighBit                   = New(0x0028, 0x0102)
	PixelRepresentation       = New(0x0028, 0x0103)
	WindowCenter              = New(0x0028, 0x1050)
	WindowWidth               = New(0x0028, 0x1051)
	PixelData                 = New(0x7FE0, 0x0010)
)

// Image Position/Orientation
var (
	ImagePositionPatient    = New(0x0020, 0x0032)
	ImageOrientationPatient = New(0x0020, 0x0037)
	SliceThickness          = New(0x0018, 0x0050)
)

// Sequence delimiters
var (
	Item                     = New(0xFFFE, 0xE000)
	ItemDelimitationItem     = New(0xFFFE, 0xE00D)
	SequenceDelimitationItem = New(0xFFFE, 0xE0DD)
)
