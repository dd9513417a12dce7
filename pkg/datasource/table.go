package datasource

// The catalog. The names are the canonical spelling accepted by Parse.
const (
	Unknown DataSource = iota
	Any
	Affymetrix
	Agricola
	Ahfs
	Afcs
	Alfred
	Allergome
	Animalqtldb
	Aphidbase
	Apidbcryptodb
	Arachnoserver
	Arrayexpress
	Asrp
	Beebase
	Beetlebase
	Bgee
	Bind
	BindTranslation
	BindingDb
	Biocyc
	Biogrid
	Brenda
	Kabob
	Camjedb
	Ccds
	Ccp
	Cgnc
	Chemspider
	Ctd
	Corum
	Cosmic
	Cygd
	Dailymed
	Dbj
	Ddbj
	Dbsnp
	Dictybase
	Dip
	Doi
	Dpd
	Drugbank
	Drugcodedirectory
	DrugProductsDb
	Ecocyc
	Ecogene
	Eg
	Elsevier
	Emb
	Embl
	Ensembl
	EnzymeCommission
	Flybase
	Gad
	Genbank
	Gene3d
	Genatlas
	Genecard
	Gensat
	Go
	Goa
	GoaReference
	GoEvidence
	GoReference
	Gopad
	GuideToPharmacology
	Hamap
	Hcdm
	Hgnc
	Homologene
	Homeodb
	Horde
	Hprd
	Huge
	Humancyc
	Iao
	Imgt
	Imex
	Incrnadb
	Innatedb
	Insdc
	Intact
	Interfil
	Interpro
	Ipi
	Irefweb
	Iuphar
	Kegg
	MamitTrnaDb
	Mp
	Maizegdb
	Matrixdb
	Medgen
	Mesh
	Merops
	Mgi
	MgiReference
	MiOntology
	Mint
	Mirbase
	Mirte
	Modbase
	Mpact
	Mpidb
	Mutdb
	Nasoniabase
	NationalDrugCodeDirectory
	Nbo
	NcbiTaxon
	NcbiTrace
	Obo
	Ophid
	Orphanet
	Omim
	Owl
	Panther
	Pathema
	Pbr
	Pdb
	PdbLigand
	Pharmgkb
	Pfam
	Pii
	Pictar
	Pir
	Pirnabank
	Pirsf
	Pm
	Pmc
	Premod
	Prf
	Prints
	Prodom
	Prosite
	Pseudocap
	PseudogeneOrg
	Pw
	Ratmap
	Rdo
	Reactome
	Refseq
	Refsnp
	Rfam
	Rgd
	UniprotPrediction
	Sgd
	Smart
	Snomedct
	Snornabase
	So
	Superfam
	Tair
	Tigrfams
	Transfac
	Uberon
	Ucscgenomebrowser
	Umls
	UncharPfam
	Unigene
	Uniparc
	Uniprot
	Uniref
	Url
	Vbrc
	Vectorbase
	Vega
	Whocc
	Wikipedia
	Wormbase
	Xenbase
	Zfin
	ZnfGeneCatalog
	Ro
	Pr
	Chebi
	Cl
	Mod
	Gdb
	ClinicalTrialsGov
	Isrctn
	Geo
	PubchemSubstance
	PubchemCompound
	PubchemBioassay
	ChemicalAbstractsService
	TherapeuticTargetsDb
	Cazy
	Cgd
	Chembl
	Chitars
	Cleanex
	Compluyeast2dpage
	Conoserver
	Disprot
	Dmdm
	Dnasu
	DosacCobs2dpage
	Echobase
	Eggnog
	Ensemblbacteria
	Ensemblfungi
	Ensemblmetazoa
	Ensemblplants
	Ensemblprotists
	Enzyme
	Euhcvdb
	Eupathdb
	Evolutionarytrace
	Genefarm
	Genetree
	Genevestigator
	Genolist
	Genomereviews
	Genomernai
	Germonline
	Glycosuitedb
	Gpcrdb
	Gramene
	HInvdb
	Hogenom
	Hovergen
	Hpa
	Hssp
	Inparanoid
	Legiolist
	Leproma
	Micado
	Mycoclap
	Nextbio
	Nextprot
	Ogp
	Oma
	Orthodb
	PathwayInteractionDb
	Patric
	Paxdb
	PdbJ
	PdbEurope
	PdbSum
	Peptideatlas
	Peroxibase
	Phosphosite
	Phossite
	Phylomedb
	PmapCutdb
	Pombase
	Pptasedb
	Pride
	Promex
	Protclustdb
	Proteinmodelportal
	Protonet
	Rebase
	Reproduction2dpage
	Rouge
	SabioRk
	Sbkb
	Smr
	Source
	String
	Supfam
	Swiss2dpage
	Tcdb
	Tuberculist
	Ucd2dpage
	Unipathway
	World2dpage
	Medline
	Bioparadigms
	numSources
)

var names = [numSources]string{
	Any:                              "ANY",
	Affymetrix:                       "AFFYMETRIX",
	Agricola:                         "AGRICOLA",
	Ahfs:                             "AHFS",
	Afcs:                             "AFCS",
	Alfred:                           "ALFRED",
	Allergome:                        "ALLERGOME",
	Animalqtldb:                      "ANIMALQTLDB",
	Aphidbase:                        "APHIDBASE",
	Apidbcryptodb:                    "APIDBCRYPTODB",
	Arachnoserver:                    "ARACHNOSERVER",
	Arrayexpress:                     "ARRAYEXPRESS",
	Asrp:                             "ASRP",
	Beebase:                          "BEEBASE",
	Beetlebase:                       "BEETLEBASE",
	Bgee:                             "BGEE",
	Bind:                             "BIND",
	BindTranslation:                  "BIND_TRANSLATION",
	BindingDb:                        "BINDING_DB",
	Biocyc:                           "BIOCYC",
	Biogrid:                          "BIOGRID",
	Brenda:                           "BRENDA",
	Kabob:                            "KABOB",
	Camjedb:                          "CAMJEDB",
	Ccds:                             "CCDS",
	Ccp:                              "CCP",
	Cgnc:                             "CGNC",
	Chemspider:                       "CHEMSPIDER",
	Ctd:                              "CTD",
	Corum:                            "CORUM",
	Cosmic:                           "COSMIC",
	Cygd:                             "CYGD",
	Dailymed:                         "DAILYMED",
	Dbj:                              "DBJ",
	Ddbj:                             "DDBJ",
	Dbsnp:                            "DBSNP",
	Dictybase:                        "DICTYBASE",
	Dip:                              "DIP",
	Doi:                              "DOI",
	Dpd:                              "DPD",
	Drugbank:                         "DRUGBANK",
	Drugcodedirectory:                "DRUGCODEDIRECTORY",
	DrugProductsDb:                   "DRUG_PRODUCTS_DB",
	Ecocyc:                           "ECOCYC",
	Ecogene:                          "ECOGENE",
	Eg:                               "EG",
	Elsevier:                         "ELSEVIER",
	Emb:                              "EMB",
	Embl:                             "EMBL",
	Ensembl:                          "ENSEMBL",
	EnzymeCommission:                 "ENZYME_COMMISSION",
	Flybase:                          "FLYBASE",
	Gad:                              "GAD",
	Genbank:                          "GENBANK",
	Gene3d:                           "GENE3D",
	Genatlas:                         "GENATLAS",
	Genecard:                         "GENECARD",
	Gensat:                           "GENSAT",
	Go:                               "GO",
	Goa:                              "GOA",
	GoaReference:                     "GOA_REFERENCE",
	GoEvidence:                       "GO_EVIDENCE",
	GoReference:                      "GO_REFERENCE",
	Gopad:                            "GOPAD",
	GuideToPharmacology:              "GUIDE_TO_PHARMACOLOGY",
	Hamap:                            "HAMAP",
	Hcdm:                             "HCDM",
	Hgnc:                             "HGNC",
	Homologene:                       "HOMOLOGENE",
	Homeodb:                          "HOMEODB",
	Horde:                            "HORDE",
	Hprd:                             "HPRD",
	Huge:                             "HUGE",
	Humancyc:                         "HUMANCYC",
	Iao:                              "IAO",
	Imgt:                             "IMGT",
	Imex:                             "IMEX",
	Incrnadb:                         "INCRNADB",
	Innatedb:                         "INNATEDB",
	Insdc:                            "INSDC",
	Intact:                           "INTACT",
	Interfil:                         "INTERFIL",
	Interpro:                         "INTERPRO",
	Ipi:                              "IPI",
	Irefweb:                          "IREFWEB",
	Iuphar:                           "IUPHAR",
	Kegg:                             "KEGG",
	MamitTrnaDb:                      "MAMIT_TRNA_DB",
	Mp:                               "MP",
	Maizegdb:                         "MAIZEGDB",
	Matrixdb:                         "MATRIXDB",
	Medgen:                           "MEDGEN",
	Mesh:                             "MESH",
	Merops:                           "MEROPS",
	Mgi:                              "MGI",
	MgiReference:                     "MGI_REFERENCE",
	MiOntology:                       "MI_ONTOLOGY",
	Mint:                             "MINT",
	Mirbase:                          "MIRBASE",
	Mirte:                            "MIRTE",
	Modbase:                          "MODBASE",
	Mpact:                            "MPACT",
	Mpidb:                            "MPIDB",
	Mutdb:                            "MUTDB",
	Nasoniabase:                      "NASONIABASE",
	NationalDrugCodeDirectory:        "NATIONAL_DRUG_CODE_DIRECTORY",
	Nbo:                              "NBO",
	NcbiTaxon:                        "NCBI_TAXON",
	NcbiTrace:                        "NCBI_TRACE",
	Obo:                              "OBO",
	Ophid:                            "OPHID",
	Orphanet:                         "ORPHANET",
	Omim:                             "OMIM",
	Owl:                              "OWL",
	Panther:                          "PANTHER",
	Pathema:                          "PATHEMA",
	Pbr:                              "PBR",
	Pdb:                              "PDB",
	PdbLigand:                        "PDB_LIGAND",
	Pharmgkb:                         "PHARMGKB",
	Pfam:                             "PFAM",
	Pii:                              "PII",
	Pictar:                           "PICTAR",
	Pir:                              "PIR",
	Pirnabank:                        "PIRNABANK",
	Pirsf:                            "PIRSF",
	Pm:                               "PM",
	Pmc:                              "PMC",
	Premod:                           "PREMOD",
	Prf:                              "PRF",
	Prints:                           "PRINTS",
	Prodom:                           "PRODOM",
	Prosite:                          "PROSITE",
	Pseudocap:                        "PSEUDOCAP",
	PseudogeneOrg:                    "PSEUDOGENE_ORG",
	Pw:                               "PW",
	Ratmap:                           "RATMAP",
	Rdo:                              "RDO",
	Reactome:                         "REACTOME",
	Refseq:                           "REFSEQ",
	Refsnp:                           "REFSNP",
	Rfam:                             "RFAM",
	Rgd:                              "RGD",
	UniprotPrediction:                "UNIPROT_PREDICTION",
	Sgd:                              "SGD",
	Smart:                            "SMART",
	Snomedct:                         "SNOMEDCT",
	Snornabase:                       "SNORNABASE",
	So:                               "SO",
	Superfam:                         "SUPERFAM",
	Tair:                             "TAIR",
	Tigrfams:                         "TIGRFAMS",
	Transfac:                         "TRANSFAC",
	Uberon:                           "UBERON",
	Ucscgenomebrowser:                "UCSCGENOMEBROWSER",
	Umls:                             "UMLS",
	UncharPfam:                       "UNCHAR_PFAM",
	Unigene:                          "UNIGENE",
	Uniparc:                          "UNIPARC",
	Uniprot:                          "UNIPROT",
	Uniref:                           "UNIREF",
	Url:                              "URL",
	Vbrc:                             "VBRC",
	Vectorbase:                       "VECTORBASE",
	Vega:                             "VEGA",
	Whocc:                            "WHOCC",
	Wikipedia:                        "WIKIPEDIA",
	Wormbase:                         "WORMBASE",
	Xenbase:                          "XENBASE",
	Zfin:                             "ZFIN",
	ZnfGeneCatalog:                   "ZNF_GENE_CATALOG",
	Ro:                               "RO",
	Pr:                               "PR",
	Chebi:                            "CHEBI",
	Cl:                               "CL",
	Mod:                              "MOD",
	Gdb:                              "GDB",
	ClinicalTrialsGov:                "CLINICAL_TRIALS_GOV",
	Isrctn:                           "ISRCTN",
	Geo:                              "GEO",
	PubchemSubstance:                 "PUBCHEM_SUBSTANCE",
	PubchemCompound:                  "PUBCHEM_COMPOUND",
	PubchemBioassay:                  "PUBCHEM_BIOASSAY",
	ChemicalAbstractsService:         "CHEMICAL_ABSTRACTS_SERVICE",
	TherapeuticTargetsDb:             "THERAPEUTIC_TARGETS_DB",
	Cazy:                             "CAZY",
	Cgd:                              "CGD",
	Chembl:                           "CHEMBL",
	Chitars:                          "CHITARS",
	Cleanex:                          "CLEANEX",
	Compluyeast2dpage:                "COMPLUYEAST_2DPAGE",
	Conoserver:                       "CONOSERVER",
	Disprot:                          "DISPROT",
	Dmdm:                             "DMDM",
	Dnasu:                            "DNASU",
	DosacCobs2dpage:                  "DOSAC_COBS_2DPAGE",
	Echobase:                         "ECHOBASE",
	Eggnog:                           "EGGNOG",
	Ensemblbacteria:                  "ENSEMBLBACTERIA",
	Ensemblfungi:                     "ENSEMBLFUNGI",
	Ensemblmetazoa:                   "ENSEMBLMETAZOA",
	Ensemblplants:                    "ENSEMBLPLANTS",
	Ensemblprotists:                  "ENSEMBLPROTISTS",
	Enzyme:                           "ENZYME",
	Euhcvdb:                          "EUHCVDB",
	Eupathdb:                         "EUPATHDB",
	Evolutionarytrace:                "EVOLUTIONARYTRACE",
	Genefarm:                         "GENEFARM",
	Genetree:                         "GENETREE",
	Genevestigator:                   "GENEVESTIGATOR",
	Genolist:                         "GENOLIST",
	Genomereviews:                    "GENOMEREVIEWS",
	Genomernai:                       "GENOMERNAI",
	Germonline:                       "GERMONLINE",
	Glycosuitedb:                     "GLYCOSUITEDB",
	Gpcrdb:                           "GPCRDB",
	Gramene:                          "GRAMENE",
	HInvdb:                           "H_INVDB",
	Hogenom:                          "HOGENOM",
	Hovergen:                         "HOVERGEN",
	Hpa:                              "HPA",
	Hssp:                             "HSSP",
	Inparanoid:                       "INPARANOID",
	Legiolist:                        "LEGIOLIST",
	Leproma:                          "LEPROMA",
	Micado:                           "MICADO",
	Mycoclap:                         "MYCOCLAP",
	Nextbio:                          "NEXTBIO",
	Nextprot:                         "NEXTPROT",
	Ogp:                              "OGP",
	Oma:                              "OMA",
	Orthodb:                          "ORTHODB",
	PathwayInteractionDb:             "PATHWAY_INTERACTION_DB",
	Patric:                           "PATRIC",
	Paxdb:                            "PAXDB",
	PdbJ:                             "PDB_J",
	PdbEurope:                        "PDB_EUROPE",
	PdbSum:                           "PDB_SUM",
	Peptideatlas:                     "PEPTIDEATLAS",
	Peroxibase:                       "PEROXIBASE",
	Phosphosite:                      "PHOSPHOSITE",
	Phossite:                         "PHOSSITE",
	Phylomedb:                        "PHYLOMEDB",
	PmapCutdb:                        "PMAP_CUTDB",
	Pombase:                          "POMBASE",
	Pptasedb:                         "PPTASEDB",
	Pride:                            "PRIDE",
	Promex:                           "PROMEX",
	Protclustdb:                      "PROTCLUSTDB",
	Proteinmodelportal:               "PROTEINMODELPORTAL",
	Protonet:                         "PROTONET",
	Rebase:                           "REBASE",
	Reproduction2dpage:               "REPRODUCTION_2DPAGE",
	Rouge:                            "ROUGE",
	SabioRk:                          "SABIO_RK",
	Sbkb:                             "SBKB",
	Smr:                              "SMR",
	Source:                           "SOURCE",
	String:                           "STRING",
	Supfam:                           "SUPFAM",
	Swiss2dpage:                      "SWISS_2DPAGE",
	Tcdb:                             "TCDB",
	Tuberculist:                      "TUBERCULIST",
	Ucd2dpage:                        "UCD_2DPAGE",
	Unipathway:                       "UNIPATHWAY",
	World2dpage:                      "WORLD_2DPAGE",
	Medline:                          "MEDLINE",
	Bioparadigms:                     "BIOPARADIGMS",
}

var displayNames = map[DataSource]string{
	Any:        "any source",
	Dip:        "Database of Interacting Proteins",
	Drugbank:   "DrugBank",
	Eg:         "Entrez Gene",
	Embl:       "EMBL-EBI nucleotide archive",
	Ensembl:    "Ensembl",
	Flybase:    "FlyBase",
	Go:         "Gene Ontology",
	Hgnc:       "HUGO Gene Nomenclature Committee",
	Hprd:       "Human Protein Reference Database",
	Interpro:   "InterPro",
	Irefweb:    "iRefWeb",
	Kegg:       "KEGG",
	Mgi:        "Mouse Genome Informatics",
	MiOntology: "PSI-MI Ontology",
	NcbiTaxon:  "NCBI Taxonomy",
	Omim:       "OMIM",
	Pdb:        "Protein Data Bank",
	Pharmgkb:   "PharmGKB",
	Pfam:       "Pfam",
	Pm:         "PubMed",
	Pmc:        "PubMed Central",
	Reactome:   "Reactome",
	Refseq:     "NCBI Reference Sequence",
	Rgd:        "Rat Genome Database",
	So:         "Sequence Ontology",
	Transfac:   "TRANSFAC",
	Uberon:     "Uberon",
	Uniprot:    "UniProt",
	Ro:         "Relation Ontology",
	Pr:         "Protein Ontology",
	Chebi:      "ChEBI",
	Cl:         "Cell Ontology",
}
