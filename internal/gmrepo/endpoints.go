package gmrepo

// Endpoint is a GMrepo API endpoint, appended to the client base URL.
type Endpoint string

// Phenotype endpoints.
const (
	EndpointAllPhenotypes      Endpoint = "get_all_phenotypes"
	EndpointStatsByMeshID      Endpoint = "getStatisticsByProjectsByMeshID"
	EndpointAssociatedSpecies  Endpoint = "getAssociatedSpeciesByMeshID"
	EndpointAssociatedGenera   Endpoint = "getAssociatedGeneraByMeshID"
	EndpointAssociatedProjects Endpoint = "getAssociatedProjectsByMeshID"
	EndpointCountRuns          Endpoint = "countAssociatedRunsByPhenotypeMeshID"
	EndpointAssociatedRuns     Endpoint = "getAssociatedRunsByPhenotypeMeshIDLimit"
	EndpointMicrobeAbundances  Endpoint = "getMicrobeAbundancesByPhenotypeMeshIDAndNCBITaxonID"
)

// Taxon endpoints.
const (
	EndpointAllGutMicrobes       Endpoint = "get_all_gut_microbes"
	EndpointPhenotypesSummary    Endpoint = "getPhenotypesAndAbundanceSummaryOfAAssociatedTaxon"
	EndpointAssociatedPhenotypes Endpoint = "getAssociatedPhenotypesAndAbundancesOfATaxon"
	EndpointRunDetails           Endpoint = "getRunDetailsByRunID"
	EndpointFullProfile          Endpoint = "getFullTaxonomicProfileByRunID"
)

// Project endpoints.
const (
	EndpointCuratedProjects          Endpoint = "getCuratedProjectsList"
	EndpointProjectMicrobeAbundances Endpoint = "getMicrobeAbundancesByPhenotypeMeshIDAndProjectID"
)
